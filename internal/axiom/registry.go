package axiom

import (
	"errors"
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// Category groups axioms by the law family they belong to.
type Category string

const (
	CategoryStructural  Category = "structural"
	CategoryCartesian   Category = "cartesian"
	CategoryCocartesian Category = "cocartesian"
)

// Validator checks one axiom against a diagram. Validators must be pure:
// no mutation of the diagram, no dependence on other axioms' results.
type Validator func(diagram.Diagram) []Finding

// Axiom is one registered law of the calculus.
type Axiom struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Validate    Validator
}

// DuplicateAxiomError reports a registry id collision.
type DuplicateAxiomError struct {
	ID string
}

// Error implements the error interface.
func (e *DuplicateAxiomError) Error() string {
	return fmt.Sprintf("axiom %q is already registered", e.ID)
}

// IsDuplicateAxiomError reports whether err is a DuplicateAxiomError.
// Uses errors.As to handle wrapped errors.
func IsDuplicateAxiomError(err error) bool {
	var de *DuplicateAxiomError
	return errors.As(err, &de)
}

// Registry holds axioms by id, preserving registration order so validation
// passes are deterministic.
type Registry struct {
	byID  map[string]Axiom
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Axiom)}
}

// DefaultRegistry creates a registry loaded with the built-in structural,
// cartesian, and cocartesian axioms.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, ax := range builtinAxioms() {
		// Built-in ids are distinct by construction.
		if err := r.Register(ax); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds an axiom. Id collisions fail with DuplicateAxiomError.
func (r *Registry) Register(ax Axiom) error {
	if ax.ID == "" {
		return fmt.Errorf("axiom id must be non-empty")
	}
	if _, exists := r.byID[ax.ID]; exists {
		return &DuplicateAxiomError{ID: ax.ID}
	}
	r.byID[ax.ID] = ax
	r.order = append(r.order, ax.ID)
	return nil
}

// Axiom looks up an axiom by id.
func (r *Registry) Axiom(id string) (Axiom, bool) {
	ax, ok := r.byID[id]
	return ax, ok
}

// AxiomsByCategory returns the axioms of one category in registration order.
func (r *Registry) AxiomsByCategory(cat Category) []Axiom {
	var out []Axiom
	for _, id := range r.order {
		if ax := r.byID[id]; ax.Category == cat {
			out = append(out, ax)
		}
	}
	return out
}

// Axioms returns all axioms in registration order.
func (r *Registry) Axioms() []Axiom {
	out := make([]Axiom, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len reports the number of registered axioms.
func (r *Registry) Len() int { return len(r.order) }

func builtinAxioms() []Axiom {
	axioms := structuralAxioms()
	axioms = append(axioms, cartesianAxioms()...)
	axioms = append(axioms, cocartesianAxioms()...)
	return axioms
}
