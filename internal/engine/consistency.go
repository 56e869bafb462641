package engine

import (
	"github.com/roach88/zigzag/internal/axiom"
	"github.com/roach88/zigzag/internal/diagram"
)

// CheckTypeConsistency reports whether a diagram is structurally valid AND
// produces a fully valid report against the given axiom registry. It
// returns false rather than raising on failure, so callers can use it as a
// gate without error plumbing.
func CheckTypeConsistency(d diagram.Diagram, reg *axiom.Registry) bool {
	if !diagram.IsValidDiagram(d) {
		return false
	}
	return axiom.ValidateAllAxioms(d, reg).IsValid()
}
