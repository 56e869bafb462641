package axiom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/zigzag/internal/diagram"
	"github.com/roach88/zigzag/internal/testutil"
)

func TestStructuralAxiomsPassOnWellFormedDiagrams(t *testing.T) {
	diagrams := []diagram.Diagram{
		diagram.GeneratorDiagram(testutil.Gen("a")),
		diagram.EmptyDiagram(),
		testutil.TwoGeneratorDiagram(testutil.Gen("a"), testutil.Gen("b")),
	}
	for _, ax := range structuralAxioms() {
		for _, d := range diagrams {
			assert.Empty(t, ax.Validate(d), "axiom %s", ax.ID)
		}
	}
}

func TestValidateUnit(t *testing.T) {
	t.Run("empty root id", func(t *testing.T) {
		findings := validateUnit(diagram.GeneratorDiagram(diagram.Generator{}))
		require.Len(t, findings, 1)
		assert.Equal(t, CodeEmptyGeneratorID, findings[0].Code)
		assert.Equal(t, SeverityError, findings[0].Severity)
	})

	t.Run("unreachable root", func(t *testing.T) {
		findings := validateUnit(testutil.CyclicDiagram())
		require.Len(t, findings, 1)
		assert.Equal(t, CodeInvalidStructure, findings[0].Code)
	})
}

func TestValidateInverse(t *testing.T) {
	a := testutil.Gen("a")
	anonymous := diagram.Generator{Label: "unnamed"}

	d := diagram.NewDiagram(diagram.GeneratorDiagram(a), []diagram.Cospan{
		diagram.NewCospan(
			diagram.GeneratorRewrite(a, anonymous),
			diagram.GeneratorRewrite(anonymous, a),
		),
	})

	findings := validateInverse(d)
	// Both legs reference the unnamed endpoint.
	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, CodeEmptyGeneratorID, f.Code)
		assert.Equal(t, AxiomInverse, f.AxiomID)
	}
}

func TestValidateSymmetry(t *testing.T) {
	a := testutil.Gen("a")
	b := testutil.Gen("b")

	d := diagram.NewDiagram(diagram.GeneratorDiagram(a), []diagram.Cospan{
		{Forward: diagram.GeneratorRewrite(a, b)},
	})

	findings := validateSymmetry(d)
	require.Len(t, findings, 1)
	assert.Equal(t, CodeInvalidStructure, findings[0].Code)
	assert.Contains(t, findings[0].Message, "missing a leg")
}

func TestValidateAssociativity(t *testing.T) {
	assert.Empty(t, validateAssociativity(testutil.TwoGeneratorDiagram(testutil.Gen("a"), testutil.Gen("b"))))

	findings := validateAssociativity(testutil.CyclicDiagram())
	require.Len(t, findings, 1)
	assert.Equal(t, CodeInvalidStructure, findings[0].Code)
}

func TestWalkRewritesReachesNestedSlices(t *testing.T) {
	a := testutil.Gen("a")
	b := testutil.Gen("b")
	inner := diagram.NewCospan(diagram.GeneratorRewrite(a, b), diagram.GeneratorRewrite(b, a))
	cone := diagram.NewCone(0, []diagram.Cospan{inner}, diagram.IdentityCospan(),
		[]diagram.Rewrite{diagram.GeneratorRewrite(a, b)})
	d := diagram.NewDiagram(testutil.TwoGeneratorDiagram(a, b), []diagram.Cospan{
		diagram.NewCospan(diagram.NewRewrite(2, []diagram.Cone{cone}), diagram.IdentityRewrite()),
	})

	var zeroDim int
	walkRewrites(d, func(r diagram.Rewrite, path string) {
		if _, ok := r.(*diagram.RewriteZero); ok {
			zeroDim++
		}
	})
	// Two from the source diagram's cospan, two inside the cone source,
	// one cone slice.
	assert.Equal(t, 5, zeroDim)
}
