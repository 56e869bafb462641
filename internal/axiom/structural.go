package axiom

import (
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// Built-in structural axiom ids.
const (
	AxiomAssociativity = "structural.associativity"
	AxiomUnit          = "structural.unit"
	AxiomInverse       = "structural.inverse"
	AxiomSymmetry      = "structural.symmetry"
)

// The structural axioms check each law's structural preconditions only:
// non-negative dimension, well-formed shape, non-empty generator ids where
// relevant. The associativity/unit/symmetry equalities themselves hold by
// construction of the composition operators and are not independently
// proved here. This is a deliberate scope limitation.

func structuralAxioms() []Axiom {
	return []Axiom{
		{
			ID:          AxiomAssociativity,
			Name:        "Associativity",
			Description: "composition reassociates freely; precondition: well-formed shape",
			Category:    CategoryStructural,
			Validate:    validateAssociativity,
		},
		{
			ID:          AxiomUnit,
			Name:        "Unit",
			Description: "the empty diagram is a two-sided unit; precondition: root generator carries an id",
			Category:    CategoryStructural,
			Validate:    validateUnit,
		},
		{
			ID:          AxiomInverse,
			Name:        "Inverse",
			Description: "zigzag legs are reversible; precondition: every 0-dim rewrite names both endpoints",
			Category:    CategoryStructural,
			Validate:    validateInverse,
		},
		{
			ID:          AxiomSymmetry,
			Name:        "Symmetry",
			Description: "cospans may swap legs; precondition: both legs of every cospan are present",
			Category:    CategoryStructural,
			Validate:    validateSymmetry,
		},
	}
}

func validateAssociativity(d diagram.Diagram) []Finding {
	if err := diagram.CheckDiagram(d); err != nil {
		return []Finding{errorFinding(AxiomAssociativity, CodeInvalidStructure, err.Error())}
	}
	if d.Dimension() < 0 {
		return []Finding{errorFinding(AxiomAssociativity, CodeInvalidStructure, "negative dimension")}
	}
	return nil
}

func validateUnit(d diagram.Diagram) []Finding {
	root, ok := diagram.RootGenerator(d)
	if !ok {
		return []Finding{errorFinding(AxiomUnit, CodeInvalidStructure, "diagram has no reachable dimension-0 root")}
	}
	if root.ID == "" {
		return []Finding{errorFinding(AxiomUnit, CodeEmptyGeneratorID, "root generator id is empty")}
	}
	return nil
}

func validateInverse(d diagram.Diagram) []Finding {
	var findings []Finding
	walkRewrites(d, func(r diagram.Rewrite, path string) {
		rz, ok := r.(*diagram.RewriteZero)
		if !ok {
			return
		}
		if rz.Source.ID == "" || rz.Target.ID == "" {
			findings = append(findings, errorFinding(AxiomInverse, CodeEmptyGeneratorID,
				fmt.Sprintf("%s: 0-dim rewrite must name both endpoint generators", path)))
		}
	})
	return findings
}

func validateSymmetry(d diagram.Diagram) []Finding {
	var findings []Finding
	walkCospans(d, func(c diagram.Cospan, path string) {
		if c.Forward == nil || c.Backward == nil {
			findings = append(findings, errorFinding(AxiomSymmetry, CodeInvalidStructure,
				fmt.Sprintf("%s: cospan is missing a leg", path)))
		}
	})
	return findings
}

// walkCospans visits every cospan in the diagram tree, depth-bounded.
func walkCospans(d diagram.Diagram, visit func(diagram.Cospan, string)) {
	walkDiagram(d, "diagram", 0, visit, nil)
}

// walkRewrites visits every rewrite in the diagram tree, depth-bounded.
func walkRewrites(d diagram.Diagram, visit func(diagram.Rewrite, string)) {
	walkDiagram(d, "diagram", 0, nil, visit)
}

const maxWalkDepth = 512

func walkDiagram(d diagram.Diagram, path string, depth int, onCospan func(diagram.Cospan, string), onRewrite func(diagram.Rewrite, string)) {
	if depth >= maxWalkDepth {
		return
	}
	dn, ok := d.(*diagram.DiagramN)
	if !ok {
		return
	}
	if dn.Source != nil {
		walkDiagram(dn.Source, path+".source", depth+1, onCospan, onRewrite)
	}
	for i, cs := range dn.Cospans {
		p := fmt.Sprintf("%s.cospans[%d]", path, i)
		if onCospan != nil {
			onCospan(cs, p)
		}
		if onRewrite != nil {
			walkRewrite(cs.Forward, p+".forward", depth+1, onRewrite)
			walkRewrite(cs.Backward, p+".backward", depth+1, onRewrite)
		}
	}
}

func walkRewrite(r diagram.Rewrite, path string, depth int, onRewrite func(diagram.Rewrite, string)) {
	if depth >= maxWalkDepth || r == nil {
		return
	}
	onRewrite(r, path)
	rn, ok := r.(*diagram.RewriteN)
	if !ok {
		return
	}
	for i, cone := range rn.Cones {
		p := fmt.Sprintf("%s.cones[%d]", path, i)
		for j, src := range cone.Source {
			walkRewrite(src.Forward, fmt.Sprintf("%s.source[%d].forward", p, j), depth+1, onRewrite)
			walkRewrite(src.Backward, fmt.Sprintf("%s.source[%d].backward", p, j), depth+1, onRewrite)
		}
		walkRewrite(cone.Target.Forward, p+".target.forward", depth+1, onRewrite)
		walkRewrite(cone.Target.Backward, p+".target.backward", depth+1, onRewrite)
		for j, sl := range cone.Slices {
			walkRewrite(sl, fmt.Sprintf("%s.slices[%d]", p, j), depth+1, onRewrite)
		}
	}
}
