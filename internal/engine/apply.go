package engine

import (
	"fmt"

	"github.com/roach88/zigzag/internal/diagram"
)

// ApplyRewrite applies a rewrite to a diagram, producing the rewritten
// diagram. This is the proof-step primitive the presentation layer invokes
// in response to user gestures.
//
// The identity rewrite is a no-op. A 0-dimensional rewrite applied to a
// 0-dimensional diagram replaces its generator when the source matches. A
// cone rewrite of dimension n applied to an n-dimensional diagram splices
// each cone's target cospan over the source cospans it collapses; the cone
// index addresses the target sequence, so the splice tracks the running
// length delta of earlier cones.
func ApplyRewrite(d diagram.Diagram, r diagram.Rewrite) (diagram.Diagram, error) {
	if err := diagram.CheckDiagram(d); err != nil {
		return nil, err
	}
	if err := diagram.CheckRewrite(r); err != nil {
		return nil, err
	}

	if diagram.IsIdentityRewrite(r) {
		return d, nil
	}

	switch rv := r.(type) {
	case *diagram.RewriteZero:
		dz, ok := d.(*diagram.DiagramZero)
		if !ok {
			return nil, &CompositionError{
				Code:     ErrCodeDimensionMismatch,
				Message:  fmt.Sprintf("0-dimensional rewrite cannot apply to a %d-dimensional diagram", d.Dimension()),
				Position: -1,
			}
		}
		if dz.Generator.ID != rv.Source.ID {
			return nil, &CompositionError{
				Code:     ErrCodeBoundaryMismatch,
				Message:  "rewrite source generator does not match diagram generator",
				LeftID:   dz.Generator.ID,
				RightID:  rv.Source.ID,
				Position: -1,
			}
		}
		return diagram.GeneratorDiagram(rv.Target), nil

	case *diagram.RewriteN:
		dn, ok := d.(*diagram.DiagramN)
		if !ok || dn.Dim != rv.Dim {
			return nil, &CompositionError{
				Code:     ErrCodeDimensionMismatch,
				Message:  fmt.Sprintf("%d-dimensional rewrite cannot apply to a %d-dimensional diagram", rv.Dim, d.Dimension()),
				Position: -1,
			}
		}
		cospans, err := spliceCones(dn.Cospans, rv.Cones)
		if err != nil {
			return nil, err
		}
		return diagram.NewDiagram(dn.Source, cospans), nil

	default:
		return nil, &diagram.StructuralError{Message: "unknown rewrite variant"}
	}
}

// spliceCones applies a sparse cone sequence to a cospan sequence. Cones
// must be ordered by ascending target index and must not overlap.
func spliceCones(cospans []diagram.Cospan, cones []diagram.Cone) ([]diagram.Cospan, error) {
	result := make([]diagram.Cospan, 0, len(cospans))
	next := 0  // next unconsumed source position
	delta := 0 // source length consumed minus target length produced so far

	for i, cone := range cones {
		start := cone.Index + delta
		if start < next || start+len(cone.Source) > len(cospans) {
			return nil, &CompositionError{
				Code:     ErrCodeBoundaryMismatch,
				Message:  fmt.Sprintf("cone %d addresses cospans [%d,%d) outside the remaining sequence", i, start, start+len(cone.Source)),
				Position: i,
			}
		}
		for j, want := range cone.Source {
			if !diagram.EqualCospans(cospans[start+j], want) {
				return nil, &CompositionError{
					Code:     ErrCodeBoundaryMismatch,
					Message:  fmt.Sprintf("cone %d source cospan %d does not match the diagram", i, j),
					Position: i,
				}
			}
		}
		result = append(result, cospans[next:start]...)
		result = append(result, cone.Target)
		next = start + len(cone.Source)
		delta += len(cone.Source) - 1
	}
	result = append(result, cospans[next:]...)
	return result, nil
}
