package axiom

import (
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// ValidateAxiomCompatibility analyzes an axiom set against a diagram
// before running it. Duplicate axiom ids are an error. Asking both
// cartesian and cocartesian axioms to validate a diagram whose root
// polarity is unambiguous is flagged as a warning: half the set can only
// ever be vacuous there.
func ValidateAxiomCompatibility(axioms []Axiom, d diagram.Diagram) []Finding {
	var findings []Finding

	seen := make(map[string]bool, len(axioms))
	hasCartesian, hasCocartesian := false, false
	for _, ax := range axioms {
		if seen[ax.ID] {
			findings = append(findings, errorFinding(ax.ID, CodeDuplicateAxiomID,
				fmt.Sprintf("axiom id %q appears more than once", ax.ID)))
		}
		seen[ax.ID] = true
		switch ax.Category {
		case CategoryCartesian:
			hasCartesian = true
		case CategoryCocartesian:
			hasCocartesian = true
		}
	}

	if hasCartesian && hasCocartesian {
		if root, ok := diagram.RootGenerator(d); ok && root.Polarity != diagram.PolarityNone {
			findings = append(findings, warningFinding("", CodeMixedPolarityAxioms,
				fmt.Sprintf("diagram root polarity is %s; validating both cartesian and cocartesian axioms is partly vacuous", root.Polarity)))
		}
	}
	return findings
}

// OptimizeValidationOrder reorders an axiom set for evaluation efficiency:
// structural axioms first, then the category matching the diagram's own
// root polarity, then the rest. The reorder is stable within each group
// and must not change validation results; validators are order-independent
// by contract.
func OptimizeValidationOrder(axioms []Axiom, d diagram.Diagram) []Axiom {
	preferred := CategoryCartesian
	if IsCocartesianDiagram(d) {
		preferred = CategoryCocartesian
	}

	out := make([]Axiom, 0, len(axioms))
	for _, ax := range axioms {
		if ax.Category == CategoryStructural {
			out = append(out, ax)
		}
	}
	for _, ax := range axioms {
		if ax.Category == preferred {
			out = append(out, ax)
		}
	}
	for _, ax := range axioms {
		if ax.Category != CategoryStructural && ax.Category != preferred {
			out = append(out, ax)
		}
	}
	return out
}
