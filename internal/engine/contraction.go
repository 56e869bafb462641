package engine

import "github.com/roach88/zigzag/internal/diagram"

// Contraction is the colimit reduction of a diagram's zigzag structure:
// it recursively simplifies every surgery step to its minimal form.

// ContractDiagram contracts a diagram. Dimension 0 is a fixed point;
// otherwise the source is contracted first and then every cospan.
// Malformed or cyclic input fails before any contraction proceeds.
func ContractDiagram(d diagram.Diagram) (diagram.Diagram, error) {
	if err := diagram.CheckDiagram(d); err != nil {
		return nil, err
	}
	return contractDiagram(d)
}

func contractDiagram(d diagram.Diagram) (diagram.Diagram, error) {
	switch v := d.(type) {
	case *diagram.DiagramZero:
		return v, nil
	case *diagram.DiagramN:
		source, err := contractDiagram(v.Source)
		if err != nil {
			return nil, err
		}
		cospans := make([]diagram.Cospan, len(v.Cospans))
		for i, cs := range v.Cospans {
			contracted, err := contractCospan(cs)
			if err != nil {
				return nil, err
			}
			cospans[i] = contracted
		}
		return diagram.NewDiagram(source, cospans), nil
	default:
		return nil, &diagram.StructuralError{Message: "unknown diagram variant"}
	}
}

// ContractCospan contracts one surgery step. A cospan whose both legs are
// identity rewrites is already minimal, as is a 0-dim/0-dim pair (no
// further simplification is defined there). Higher-dimensional legs are
// contracted by recursing into their cones.
func ContractCospan(c diagram.Cospan) (diagram.Cospan, error) {
	if err := diagram.CheckCospan(c); err != nil {
		return diagram.Cospan{}, err
	}
	return contractCospan(c)
}

func contractCospan(c diagram.Cospan) (diagram.Cospan, error) {
	if diagram.IsIdentityRewrite(c.Forward) && diagram.IsIdentityRewrite(c.Backward) {
		return c, nil
	}
	if c.Forward.Dimension() == 0 && c.Backward.Dimension() == 0 {
		return c, nil
	}
	forward, err := contractRewrite(c.Forward)
	if err != nil {
		return diagram.Cospan{}, err
	}
	backward, err := contractRewrite(c.Backward)
	if err != nil {
		return diagram.Cospan{}, err
	}
	return diagram.NewCospan(forward, backward), nil
}

func contractRewrite(r diagram.Rewrite) (diagram.Rewrite, error) {
	rn, ok := r.(*diagram.RewriteN)
	if !ok {
		// 0-dimensional and identity rewrites are contraction fixed points.
		return r, nil
	}
	cones := make([]diagram.Cone, len(rn.Cones))
	for i, cone := range rn.Cones {
		contracted, err := contractCone(cone)
		if err != nil {
			return nil, err
		}
		cones[i] = contracted
	}
	return diagram.NewRewrite(rn.Dim, cones), nil
}

func contractCone(c diagram.Cone) (diagram.Cone, error) {
	source := make([]diagram.Cospan, len(c.Source))
	for i, cs := range c.Source {
		contracted, err := contractCospan(cs)
		if err != nil {
			return diagram.Cone{}, err
		}
		source[i] = contracted
	}
	target, err := contractCospan(c.Target)
	if err != nil {
		return diagram.Cone{}, err
	}
	slices := make([]diagram.Rewrite, len(c.Slices))
	for i, sl := range c.Slices {
		contracted, err := contractRewrite(sl)
		if err != nil {
			return diagram.Cone{}, err
		}
		slices[i] = contracted
	}
	return diagram.NewCone(c.Index, source, target, slices), nil
}

// ContractiblePair is an adjacent pair in a diagram's flattened rewrite
// sequence whose dimensions match: a heuristic signal of a mergeable
// zigzag segment. Index is the pair's position in the flattened sequence.
type ContractiblePair struct {
	Index int
	Left  diagram.Rewrite
	Right diagram.Rewrite
}

// FindContractibleParts scans the flattened forward/backward rewrite
// sequence drawn from the diagram's cospans and returns every adjacent
// pair whose dimensions match. It is total: invalid input and diagrams
// with no such pairs both yield an empty list, never an error.
func FindContractibleParts(d diagram.Diagram) []ContractiblePair {
	parts := []ContractiblePair{}
	if !diagram.IsValidDiagram(d) {
		return parts
	}
	dn, ok := d.(*diagram.DiagramN)
	if !ok {
		return parts
	}

	flat := make([]diagram.Rewrite, 0, 2*len(dn.Cospans))
	for _, cs := range dn.Cospans {
		flat = append(flat, cs.Forward, cs.Backward)
	}
	for i := 0; i+1 < len(flat); i++ {
		if flat[i].Dimension() == flat[i+1].Dimension() {
			parts = append(parts, ContractiblePair{Index: i, Left: flat[i], Right: flat[i+1]})
		}
	}
	return parts
}

// PerformColimitContraction folds a list of rewrites into the single
// rewrite of their colimit: empty input yields the identity rewrite, a
// singleton returns itself, and longer lists left-fold via rewrite
// composition.
func PerformColimitContraction(parts []diagram.Rewrite) (diagram.Rewrite, error) {
	return ComposeSequentially(parts)
}
