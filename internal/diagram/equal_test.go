package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualDiagrams(t *testing.T) {
	a := Generator{ID: "a"}
	b := Generator{ID: "b"}

	build := func() Diagram {
		return NewDiagram(GeneratorDiagram(a), []Cospan{
			NewCospan(GeneratorRewrite(a, b), GeneratorRewrite(b, a)),
		})
	}

	t.Run("content equality across independent constructions", func(t *testing.T) {
		assert.True(t, EqualDiagrams(build(), build()))
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		assert.False(t, EqualDiagrams(build(), GeneratorDiagram(a)))
	})

	t.Run("generator mismatch", func(t *testing.T) {
		assert.False(t, EqualDiagrams(GeneratorDiagram(a), GeneratorDiagram(b)))
	})

	t.Run("label participates in equality", func(t *testing.T) {
		labeled := Generator{ID: "a", Label: "A"}
		assert.False(t, EqualDiagrams(GeneratorDiagram(a), GeneratorDiagram(labeled)))
	})

	t.Run("cospan count mismatch", func(t *testing.T) {
		assert.False(t, EqualDiagrams(build(), NewDiagram(GeneratorDiagram(a), nil)))
	})

	t.Run("nil handling", func(t *testing.T) {
		assert.True(t, EqualDiagrams(nil, nil))
		assert.False(t, EqualDiagrams(build(), nil))
	})

	t.Run("cyclic values compare unequal", func(t *testing.T) {
		cyclic := &DiagramN{Dim: 1}
		cyclic.Source = cyclic
		assert.False(t, EqualDiagrams(cyclic, cyclic))
	})
}

func TestEqualRewrites(t *testing.T) {
	a := Generator{ID: "a"}
	b := Generator{ID: "b"}
	cs := NewCospan(GeneratorRewrite(a, b), GeneratorRewrite(b, a))

	t.Run("zero-dim", func(t *testing.T) {
		assert.True(t, EqualRewrites(GeneratorRewrite(a, b), GeneratorRewrite(a, b)))
		assert.False(t, EqualRewrites(GeneratorRewrite(a, b), GeneratorRewrite(b, a)))
	})

	t.Run("identity compares equal to any identity", func(t *testing.T) {
		assert.True(t, EqualRewrites(IdentityRewrite(), IdentityRewrite()))
		assert.False(t, EqualRewrites(IdentityRewrite(), GeneratorRewrite(a, b)))
	})

	t.Run("cones", func(t *testing.T) {
		r1 := NewRewrite(2, []Cone{NewCone(0, []Cospan{cs}, cs, []Rewrite{IdentityRewrite()})})
		r2 := NewRewrite(2, []Cone{NewCone(0, []Cospan{cs}, cs, []Rewrite{IdentityRewrite()})})
		r3 := NewRewrite(2, []Cone{NewCone(1, []Cospan{cs}, cs, []Rewrite{IdentityRewrite()})})
		assert.True(t, EqualRewrites(r1, r2))
		assert.False(t, EqualRewrites(r1, r3))
	})
}

func TestEqualCospans(t *testing.T) {
	a := Generator{ID: "a"}
	b := Generator{ID: "b"}

	assert.True(t, EqualCospans(IdentityCospan(), IdentityCospan()))
	assert.False(t, EqualCospans(
		IdentityCospan(),
		NewCospan(GeneratorRewrite(a, b), GeneratorRewrite(b, a)),
	))
}
