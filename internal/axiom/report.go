package axiom

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/zigzag/internal/diagram"
)

// AxiomResult holds the findings one axiom produced against one diagram.
type AxiomResult struct {
	AxiomID  string    `json:"axiom_id"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// ValidationReport accumulates per-axiom findings for one diagram. The ID
// is a correlation token for the presentation layer; it takes no part in
// the report's semantics.
type ValidationReport struct {
	ID      string        `json:"id"`
	Results []AxiomResult `json:"results"`
}

// NewValidationReport creates an empty report with a fresh correlation id.
func NewValidationReport() *ValidationReport {
	return &ValidationReport{ID: uuid.NewString()}
}

// Add records an axiom's findings, splitting them into errors (severity
// error) and warnings (everything advisory).
func (r *ValidationReport) Add(axiomID string, findings []Finding) {
	result := AxiomResult{AxiomID: axiomID, Errors: []Finding{}, Warnings: []Finding{}}
	for _, f := range findings {
		if f.AxiomID == "" {
			f.AxiomID = axiomID
		}
		if f.Severity == SeverityError {
			result.Errors = append(result.Errors, f)
		} else {
			result.Warnings = append(result.Warnings, f)
		}
	}
	r.Results = append(r.Results, result)
}

// AllErrors aggregates every error-severity finding across axioms.
func (r *ValidationReport) AllErrors() []Finding {
	var out []Finding
	for _, res := range r.Results {
		out = append(out, res.Errors...)
	}
	return out
}

// AllWarnings aggregates every advisory finding across axioms.
func (r *ValidationReport) AllWarnings() []Finding {
	var out []Finding
	for _, res := range r.Results {
		out = append(out, res.Warnings...)
	}
	return out
}

// IsValid reports whether the pass produced no errors at all.
func (r *ValidationReport) IsValid() bool {
	for _, res := range r.Results {
		if len(res.Errors) > 0 {
			return false
		}
	}
	return true
}

// ValidateAllAxioms runs every registered axiom against a diagram.
//
// Structural validation gates the pass: a structurally invalid diagram
// short-circuits to a single INVALID_DIAGRAM_STRUCTURE error. Each axiom
// validator runs defensively isolated: a panic inside one validator is
// recorded as an AXIOM_VALIDATION_ERROR scoped to that axiom, and every
// other axiom still runs to completion.
func ValidateAllAxioms(d diagram.Diagram, reg *Registry) *ValidationReport {
	report := NewValidationReport()

	if err := diagram.CheckDiagram(d); err != nil {
		report.Add("", []Finding{errorFinding("", CodeInvalidStructure, err.Error())})
		return report
	}

	for _, ax := range reg.Axioms() {
		report.Add(ax.ID, runIsolated(ax, d))
	}
	return report
}

// runIsolated runs one validator, converting a panic into a finding.
func runIsolated(ax Axiom, d diagram.Diagram) (findings []Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			findings = []Finding{errorFinding(ax.ID, CodeAxiomValidationError,
				fmt.Sprintf("axiom validator panicked: %v", rec))}
		}
	}()
	if ax.Validate == nil {
		return []Finding{errorFinding(ax.ID, CodeAxiomValidationError, "axiom has no validator")}
	}
	return ax.Validate(d)
}

// SatisfiesAllAxioms is the boolean convenience wrapper over
// ValidateAllAxioms.
func SatisfiesAllAxioms(d diagram.Diagram, reg *Registry) bool {
	return ValidateAllAxioms(d, reg).IsValid()
}
