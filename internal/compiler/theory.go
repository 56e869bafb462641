// Package compiler turns declarative CUE theory files into kernel values.
//
// A theory names a calculus instance: the generator signatures it works
// over (with optional polarity coloring) and the axiom ids it enables.
// Theories are configuration, not formula syntax; diagrams themselves are
// built programmatically or arrive from the persistence layer.
package compiler

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/zigzag/internal/axiom"
	"github.com/roach88/zigzag/internal/diagram"
)

// Theory is a compiled theory definition.
type Theory struct {
	// Name identifies the theory.
	Name string

	// Generators lists the generator signatures in declaration order.
	Generators []diagram.Generator

	// Axioms lists the enabled axiom ids in declaration order.
	Axioms []string
}

// CompileTheory parses a CUE value into a Theory. Uses the CUE SDK's Go
// API directly (not a CLI subprocess).
//
// The CUE value should be the theory struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`theory: { name: "rel", ... }`)
//	th, err := CompileTheory(v.LookupPath(cue.ParsePath("theory")))
func CompileTheory(v cue.Value) (*Theory, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	th := &Theory{}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{Field: "name", Message: "name is required", Pos: v.Pos()}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	if name == "" {
		return nil, &CompileError{Field: "name", Message: "name must be non-empty", Pos: nameVal.Pos()}
	}
	th.Name = name

	th.Generators, err = parseGenerators(v)
	if err != nil {
		return nil, err
	}
	if len(th.Generators) == 0 {
		return nil, &CompileError{Field: "generators", Message: "at least one generator is required", Pos: v.Pos()}
	}

	th.Axioms, err = parseAxioms(v)
	if err != nil {
		return nil, err
	}

	return th, nil
}

func parseGenerators(v cue.Value) ([]diagram.Generator, error) {
	gensVal := v.LookupPath(cue.ParsePath("generators"))
	if !gensVal.Exists() {
		return nil, nil
	}
	iter, err := gensVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var gens []diagram.Generator
	seen := make(map[string]bool)
	for iter.Next() {
		gen, err := parseGenerator(iter.Value())
		if err != nil {
			return nil, err
		}
		if seen[gen.ID] {
			return nil, &CompileError{
				Field:   "generators",
				Message: fmt.Sprintf("duplicate generator id %q", gen.ID),
				Pos:     iter.Value().Pos(),
			}
		}
		seen[gen.ID] = true
		gens = append(gens, gen)
	}
	return gens, nil
}

func parseGenerator(v cue.Value) (diagram.Generator, error) {
	var gen diagram.Generator

	idVal := v.LookupPath(cue.ParsePath("id"))
	if !idVal.Exists() {
		return gen, &CompileError{Field: "generators.id", Message: "id is required", Pos: v.Pos()}
	}
	id, err := idVal.String()
	if err != nil {
		return gen, formatCUEError(err)
	}
	gen.ID = id

	if labelVal := v.LookupPath(cue.ParsePath("label")); labelVal.Exists() {
		label, err := labelVal.String()
		if err != nil {
			return gen, formatCUEError(err)
		}
		gen.Label = label
	}

	if polVal := v.LookupPath(cue.ParsePath("polarity")); polVal.Exists() {
		pol, err := polVal.String()
		if err != nil {
			return gen, formatCUEError(err)
		}
		gen.Polarity = diagram.Polarity(pol)
	}

	if err := diagram.CheckGenerator(gen); err != nil {
		return gen, &CompileError{Field: "generators", Message: err.Error(), Pos: v.Pos()}
	}
	return gen, nil
}

func parseAxioms(v cue.Value) ([]string, error) {
	axVal := v.LookupPath(cue.ParsePath("axioms"))
	if !axVal.Exists() {
		return nil, nil
	}
	iter, err := axVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var ids []string
	for iter.Next() {
		id, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// LoadTheoryString compiles a theory from CUE source text. The source must
// define a top-level "theory" struct.
func LoadTheoryString(src string) (*Theory, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileTheory(v.LookupPath(cue.ParsePath("theory")))
}

// LoadTheoryFile compiles a theory from a CUE file on disk.
func LoadTheoryFile(path string) (*Theory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theory file: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileTheory(v.LookupPath(cue.ParsePath("theory")))
}

// Generator looks up a declared generator signature by id.
func (t *Theory) Generator(id string) (diagram.Generator, bool) {
	for _, g := range t.Generators {
		if g.ID == id {
			return g, true
		}
	}
	return diagram.Generator{}, false
}

// BuildRegistry produces a registry restricted to the theory's enabled
// axioms, resolved against base (typically axiom.DefaultRegistry()). A
// theory with no axioms clause enables every axiom in base. Unknown axiom
// ids fail compilation.
func (t *Theory) BuildRegistry(base *axiom.Registry) (*axiom.Registry, error) {
	if len(t.Axioms) == 0 {
		return base, nil
	}
	reg := axiom.NewRegistry()
	for _, id := range t.Axioms {
		ax, ok := base.Axiom(id)
		if !ok {
			return nil, &CompileError{Field: "axioms", Message: fmt.Sprintf("unknown axiom id %q", id)}
		}
		if err := reg.Register(ax); err != nil {
			return nil, &CompileError{Field: "axioms", Message: err.Error()}
		}
	}
	return reg, nil
}
