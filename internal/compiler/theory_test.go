package compiler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/zigzag/internal/axiom"
	"github.com/roach88/zigzag/internal/diagram"
)

const relTheory = `
theory: {
	name: "rel"
	generators: [
		{id: "r", label: "R"},
		{id: "s"},
		{id: "prod", polarity: "cartesian"},
	]
	axioms: ["structural.unit", "cartesian.product"]
}
`

func TestLoadTheoryString(t *testing.T) {
	th, err := LoadTheoryString(relTheory)
	require.NoError(t, err)

	assert.Equal(t, "rel", th.Name)
	require.Len(t, th.Generators, 3)
	assert.Equal(t, diagram.Generator{ID: "r", Label: "R"}, th.Generators[0])
	assert.Equal(t, diagram.Generator{ID: "s"}, th.Generators[1])
	assert.Equal(t, diagram.PolarityCartesian, th.Generators[2].Polarity)
	assert.Equal(t, []string{"structural.unit", "cartesian.product"}, th.Axioms)
}

func TestLoadTheoryStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{
			"missing name",
			`theory: { generators: [{id: "r"}] }`,
			"name",
		},
		{
			"empty name",
			`theory: { name: "", generators: [{id: "r"}] }`,
			"name",
		},
		{
			"no generators",
			`theory: { name: "rel" }`,
			"generators",
		},
		{
			"generator without id",
			`theory: { name: "rel", generators: [{label: "R"}] }`,
			"generators.id",
		},
		{
			"duplicate generator ids",
			`theory: { name: "rel", generators: [{id: "r"}, {id: "r"}] }`,
			"generators",
		},
		{
			"invalid polarity",
			`theory: { name: "rel", generators: [{id: "r", polarity: "sideways"}] }`,
			"generators",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTheoryString(tt.src)
			require.Error(t, err)

			var ce *CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestLoadTheoryStringMalformedCUE(t *testing.T) {
	_, err := LoadTheoryString(`theory: { name: `)
	assert.Error(t, err)
}

func TestLoadTheoryFile(t *testing.T) {
	th, err := LoadTheoryFile(filepath.Join("testdata", "rel.cue"))
	require.NoError(t, err)

	assert.Equal(t, "rel", th.Name)
	require.Len(t, th.Generators, 3)
	assert.Equal(t, []string{
		"structural.associativity",
		"structural.unit",
		"cartesian.product",
	}, th.Axioms)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTheoryFile(filepath.Join("testdata", "no-such-theory.cue"))
		assert.Error(t, err)
	})
}

func TestTheoryGeneratorLookup(t *testing.T) {
	th, err := LoadTheoryString(relTheory)
	require.NoError(t, err)

	g, ok := th.Generator("prod")
	require.True(t, ok)
	assert.Equal(t, diagram.PolarityCartesian, g.Polarity)

	_, ok = th.Generator("missing")
	assert.False(t, ok)
}

func TestBuildRegistry(t *testing.T) {
	base := axiom.DefaultRegistry()

	t.Run("restricts to the enabled axioms", func(t *testing.T) {
		th, err := LoadTheoryString(relTheory)
		require.NoError(t, err)

		reg, err := th.BuildRegistry(base)
		require.NoError(t, err)
		assert.Equal(t, 2, reg.Len())

		_, ok := reg.Axiom("structural.unit")
		assert.True(t, ok)
		_, ok = reg.Axiom("structural.symmetry")
		assert.False(t, ok)
	})

	t.Run("no axioms clause enables everything", func(t *testing.T) {
		th, err := LoadTheoryString(`theory: { name: "rel", generators: [{id: "r"}] }`)
		require.NoError(t, err)

		reg, err := th.BuildRegistry(base)
		require.NoError(t, err)
		assert.Equal(t, base.Len(), reg.Len())
	})

	t.Run("unknown axiom id fails", func(t *testing.T) {
		th := &Theory{Name: "rel", Axioms: []string{"no.such.axiom"}}
		_, err := th.BuildRegistry(base)
		require.Error(t, err)

		var ce *CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "axioms", ce.Field)
	})
}

func TestCompileErrorFormatting(t *testing.T) {
	e := &CompileError{Field: "name", Message: "name is required"}
	assert.Equal(t, "name: name is required", e.Error())
}
