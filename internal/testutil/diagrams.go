// Package testutil provides deterministic diagram builders for tests.
package testutil

import "github.com/roach88/zigzag/internal/diagram"

// Gen builds an uncolored generator.
func Gen(id string) diagram.Generator {
	return diagram.Generator{ID: id}
}

// LabeledGen builds an uncolored generator with a display label.
func LabeledGen(id, label string) diagram.Generator {
	return diagram.Generator{ID: id, Label: label}
}

// PolarGen builds a polarity-tagged generator.
func PolarGen(id string, pol diagram.Polarity) diagram.Generator {
	return diagram.Generator{ID: id, Polarity: pol}
}

// TwoGeneratorDiagram builds the dimension-1 diagram produced by
// horizontally composing the two generators: source a, one cospan pairing
// a->b with b->a.
func TwoGeneratorDiagram(a, b diagram.Generator) *diagram.DiagramN {
	cs := diagram.NewCospan(
		diagram.GeneratorRewrite(a, b),
		diagram.GeneratorRewrite(b, a),
	)
	return diagram.NewDiagram(diagram.GeneratorDiagram(a), []diagram.Cospan{cs})
}

// DiagramWithIdentitySurgery appends a redundant (identity/identity)
// cospan to a copy of the given 1-dimensional diagram. Normalization must
// prune it.
func DiagramWithIdentitySurgery(d *diagram.DiagramN) *diagram.DiagramN {
	cospans := make([]diagram.Cospan, 0, len(d.Cospans)+1)
	cospans = append(cospans, d.Cospans...)
	cospans = append(cospans, diagram.IdentityCospan())
	return diagram.NewDiagram(d.Source, cospans)
}

// ConeRewrite builds a dimension-2 rewrite with one cone collapsing the
// given source cospans into target at the given index. Slices are
// identity, one per collapsed layer.
func ConeRewrite(index int, source []diagram.Cospan, target diagram.Cospan) *diagram.RewriteN {
	slices := make([]diagram.Rewrite, len(source))
	for i := range slices {
		slices[i] = diagram.IdentityRewrite()
	}
	cone := diagram.NewCone(index, source, target, slices)
	return diagram.NewRewrite(2, []diagram.Cone{cone})
}

// CyclicDiagram builds a self-referential diagram for exercising cycle
// detection. It is deliberately invalid.
func CyclicDiagram() *diagram.DiagramN {
	d := &diagram.DiagramN{Dim: 1}
	d.Source = d
	return d
}
