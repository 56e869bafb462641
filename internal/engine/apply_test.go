package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/zigzag/internal/diagram"
	"github.com/roach88/zigzag/internal/testutil"
)

func TestApplyRewriteIdentity(t *testing.T) {
	d := testutil.TwoGeneratorDiagram(testutil.Gen("a"), testutil.Gen("b"))
	got, err := ApplyRewrite(d, diagram.IdentityRewrite())
	require.NoError(t, err)
	assert.True(t, diagram.EqualDiagrams(d, got))
}

func TestApplyRewriteZeroDimensional(t *testing.T) {
	a := testutil.Gen("a")
	b := testutil.Gen("b")
	c := testutil.Gen("c")

	t.Run("replaces matching generator", func(t *testing.T) {
		got, err := ApplyRewrite(diagram.GeneratorDiagram(a), diagram.GeneratorRewrite(a, b))
		require.NoError(t, err)
		assert.True(t, diagram.EqualDiagrams(diagram.GeneratorDiagram(b), got))
	})

	t.Run("source mismatch fails atomically", func(t *testing.T) {
		_, err := ApplyRewrite(diagram.GeneratorDiagram(a), diagram.GeneratorRewrite(b, c))
		require.Error(t, err)
		var ce *CompositionError
		require.True(t, asCompositionError(err, &ce))
		assert.Equal(t, ErrCodeBoundaryMismatch, ce.Code)
		assert.Equal(t, "a", ce.LeftID)
		assert.Equal(t, "b", ce.RightID)
	})

	t.Run("dimension mismatch fails", func(t *testing.T) {
		d := testutil.TwoGeneratorDiagram(a, b)
		_, err := ApplyRewrite(d, diagram.GeneratorRewrite(a, b))
		require.Error(t, err)
		var ce *CompositionError
		require.True(t, asCompositionError(err, &ce))
		assert.Equal(t, ErrCodeDimensionMismatch, ce.Code)
	})
}

func TestApplyRewriteCones(t *testing.T) {
	a := testutil.Gen("a")
	b := testutil.Gen("b")
	c := testutil.Gen("c")
	csAB := diagram.NewCospan(diagram.GeneratorRewrite(a, b), diagram.GeneratorRewrite(b, a))
	csBC := diagram.NewCospan(diagram.GeneratorRewrite(b, c), diagram.GeneratorRewrite(c, b))
	csAC := diagram.NewCospan(diagram.GeneratorRewrite(a, c), diagram.GeneratorRewrite(c, a))
	source := diagram.NewDiagram(testutil.TwoGeneratorDiagram(a, b), []diagram.Cospan{csAB, csBC})

	t.Run("collapses the addressed block", func(t *testing.T) {
		r := testutil.ConeRewrite(0, []diagram.Cospan{csAB, csBC}, csAC)
		got, err := ApplyRewrite(source, r)
		require.NoError(t, err)

		dn, ok := got.(*diagram.DiagramN)
		require.True(t, ok)
		require.Len(t, dn.Cospans, 1)
		assert.True(t, diagram.EqualCospans(csAC, dn.Cospans[0]))
		assert.True(t, diagram.EqualDiagrams(source.Source, dn.Source))
	})

	t.Run("zero-ary cone inserts", func(t *testing.T) {
		r := testutil.ConeRewrite(1, nil, csAC)
		got, err := ApplyRewrite(source, r)
		require.NoError(t, err)

		dn := got.(*diagram.DiagramN)
		require.Len(t, dn.Cospans, 3)
		assert.True(t, diagram.EqualCospans(csAB, dn.Cospans[0]))
		assert.True(t, diagram.EqualCospans(csAC, dn.Cospans[1]))
		assert.True(t, diagram.EqualCospans(csBC, dn.Cospans[2]))
	})

	t.Run("source block mismatch fails", func(t *testing.T) {
		r := testutil.ConeRewrite(0, []diagram.Cospan{csBC}, csAC)
		_, err := ApplyRewrite(source, r)
		require.Error(t, err)
		var ce *CompositionError
		require.True(t, asCompositionError(err, &ce))
		assert.Equal(t, ErrCodeBoundaryMismatch, ce.Code)
	})

	t.Run("out-of-range cone fails", func(t *testing.T) {
		r := testutil.ConeRewrite(5, []diagram.Cospan{csAB}, csAC)
		_, err := ApplyRewrite(source, r)
		require.Error(t, err)
		var ce *CompositionError
		require.True(t, asCompositionError(err, &ce))
		assert.Equal(t, ErrCodeBoundaryMismatch, ce.Code)
	})

	t.Run("dimension mismatch fails", func(t *testing.T) {
		r := testutil.ConeRewrite(0, []diagram.Cospan{csAB}, csAC)
		_, err := ApplyRewrite(diagram.GeneratorDiagram(a), r)
		require.Error(t, err)
		var ce *CompositionError
		require.True(t, asCompositionError(err, &ce))
		assert.Equal(t, ErrCodeDimensionMismatch, ce.Code)
	})
}

func TestApplyRewriteInvalidInputs(t *testing.T) {
	a := testutil.Gen("a")

	_, err := ApplyRewrite(nil, diagram.IdentityRewrite())
	assert.Error(t, err)

	_, err = ApplyRewrite(diagram.GeneratorDiagram(a), nil)
	assert.Error(t, err)

	_, err = ApplyRewrite(testutil.CyclicDiagram(), diagram.IdentityRewrite())
	assert.True(t, diagram.IsCycleError(err))
}
