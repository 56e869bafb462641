package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGenerator(t *testing.T) {
	tests := []struct {
		name  string
		gen   Generator
		valid bool
	}{
		{"plain", Generator{ID: "a"}, true},
		{"labeled", Generator{ID: "a", Label: "A"}, true},
		{"cartesian", Generator{ID: "a", Polarity: PolarityCartesian}, true},
		{"cocartesian", Generator{ID: "a", Polarity: PolarityCocartesian}, true},
		{"empty id", Generator{}, false},
		{"unknown polarity", Generator{ID: "a", Polarity: "sideways"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidGenerator(tt.gen))
		})
	}
}

func TestCheckDiagram(t *testing.T) {
	a := Generator{ID: "a"}
	b := Generator{ID: "b"}
	oneDim := NewDiagram(GeneratorDiagram(a), []Cospan{
		NewCospan(GeneratorRewrite(a, b), GeneratorRewrite(b, a)),
	})

	tests := []struct {
		name  string
		d     Diagram
		valid bool
	}{
		{"generator diagram", GeneratorDiagram(a), true},
		{"empty diagram", EmptyDiagram(), true},
		{"one-dimensional", oneDim, true},
		{"two-dimensional", NewDiagram(oneDim, nil), true},
		{"nil", nil, false},
		{"empty generator id", GeneratorDiagram(Generator{}), false},
		{"nil source", &DiagramN{Dim: 1}, false},
		{"dimension zero on n-shape", &DiagramN{Dim: 0, Source: GeneratorDiagram(a)}, false},
		{"source dimension mismatch", &DiagramN{Dim: 3, Source: GeneratorDiagram(a)}, false},
		{"bad cospan leg", &DiagramN{Dim: 1, Source: GeneratorDiagram(a), Cospans: []Cospan{{}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidDiagram(tt.d))
		})
	}
}

func TestCheckDiagramCycle(t *testing.T) {
	d := &DiagramN{Dim: 1}
	d.Source = d

	require.False(t, IsValidDiagram(d))

	err := CheckDiagram(d)
	require.Error(t, err)
	assert.True(t, IsCycleError(err))
	assert.False(t, IsStructuralError(err))
}

func TestCheckRewrite(t *testing.T) {
	a := Generator{ID: "a"}
	b := Generator{ID: "b"}
	cs := NewCospan(GeneratorRewrite(a, b), GeneratorRewrite(b, a))

	tests := []struct {
		name  string
		r     Rewrite
		valid bool
	}{
		{"zero-dim", GeneratorRewrite(a, b), true},
		{"identity", IdentityRewrite(), true},
		{"cones", NewRewrite(2, []Cone{NewCone(0, nil, cs, nil)}), true},
		{"nil", nil, false},
		{"zero-dim empty target", GeneratorRewrite(a, Generator{}), false},
		{"cone dimension too low", &RewriteN{Dim: 1}, false},
		{"negative cone index", NewRewrite(2, []Cone{NewCone(-1, nil, cs, nil)}), false},
		{
			"slice count mismatch",
			NewRewrite(2, []Cone{{Index: 0, Source: []Cospan{cs}, Target: cs}}),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidRewrite(tt.r))
		})
	}
}

func TestCheckRewriteCycle(t *testing.T) {
	r := &RewriteN{Dim: 2}
	r.Cones = []Cone{{
		Index:  0,
		Source: []Cospan{{Forward: r, Backward: IdentityRewrite()}},
		Target: IdentityCospan(),
		Slices: []Rewrite{IdentityRewrite()},
	}}

	require.False(t, IsValidRewrite(r))
	assert.True(t, IsCycleError(CheckRewrite(r)))
}

func TestCheckCospanAndCone(t *testing.T) {
	a := Generator{ID: "a"}
	b := Generator{ID: "b"}
	cs := NewCospan(GeneratorRewrite(a, b), GeneratorRewrite(b, a))

	assert.True(t, IsValidCospan(cs))
	assert.True(t, IsValidCospan(IdentityCospan()))
	assert.False(t, IsValidCospan(Cospan{Forward: GeneratorRewrite(a, b)}))

	cone := NewCone(0, []Cospan{cs}, IdentityCospan(), []Rewrite{IdentityRewrite()})
	assert.True(t, IsValidCone(cone))
	assert.False(t, IsValidCone(NewCone(-1, nil, cs, nil)))
}

func TestEmptyDiagram(t *testing.T) {
	e := EmptyDiagram()
	assert.Equal(t, EmptyGeneratorID, e.Generator.ID)
	assert.True(t, IsEmptyDiagram(e))
	assert.True(t, IsValidDiagram(e))
	assert.False(t, IsEmptyDiagram(GeneratorDiagram(Generator{ID: "a"})))
}

func TestRootGenerator(t *testing.T) {
	a := Generator{ID: "a", Polarity: PolarityCartesian}
	d := NewDiagram(NewDiagram(GeneratorDiagram(a), nil), nil)

	root, ok := RootGenerator(d)
	require.True(t, ok)
	assert.Equal(t, a, root)

	cyclic := &DiagramN{Dim: 1}
	cyclic.Source = cyclic
	_, ok = RootGenerator(cyclic)
	assert.False(t, ok)
}
