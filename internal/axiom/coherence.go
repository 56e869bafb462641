package axiom

import (
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// CoherenceResult classifies one proof transition between two generators.
type CoherenceResult struct {
	Findings []Finding
}

// IsCoherent reports whether the transition is acceptable: only
// error-severity findings make it false.
func (r CoherenceResult) IsCoherent() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// CheckCartesianCoherence classifies a transition by the cartesian
// polarity of source vs target:
//   - both cartesian: the rewrite's endpoints must literally match the two
//     generators, else a REWRITE_MISMATCH warning
//   - cartesian source, uncolored target: STRUCTURE_LOSS warning
//   - uncolored source, cartesian target: STRUCTURE_CREATION info
func CheckCartesianCoherence(source, target diagram.Generator, rw diagram.Rewrite) CoherenceResult {
	return checkCoherence(source, target, rw, diagram.PolarityCartesian)
}

// CheckCocartesianCoherence is the exact dual of CheckCartesianCoherence.
func CheckCocartesianCoherence(source, target diagram.Generator, rw diagram.Rewrite) CoherenceResult {
	return checkCoherence(source, target, rw, diagram.PolarityCocartesian)
}

func checkCoherence(source, target diagram.Generator, rw diagram.Rewrite, pol diagram.Polarity) CoherenceResult {
	var findings []Finding
	switch {
	case source.Polarity == pol && target.Polarity == pol:
		if !rewriteMatchesEndpoints(rw, source, target) {
			findings = append(findings, warningFinding("", CodeRewriteMismatch,
				fmt.Sprintf("rewrite endpoints do not match generators %q -> %q", source.ID, target.ID)))
		}
	case source.Polarity == pol:
		findings = append(findings, warningFinding("", CodeStructureLoss,
			fmt.Sprintf("transition loses %s structure at generator %q", pol, source.ID)))
	case target.Polarity == pol:
		findings = append(findings, infoFinding("", CodeStructureCreation,
			fmt.Sprintf("transition creates %s structure at generator %q", pol, target.ID)))
	}
	return CoherenceResult{Findings: findings}
}

func rewriteMatchesEndpoints(rw diagram.Rewrite, source, target diagram.Generator) bool {
	rz, ok := rw.(*diagram.RewriteZero)
	if !ok {
		return false
	}
	return rz.Source == source && rz.Target == target
}
