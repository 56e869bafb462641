package axiom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/zigzag/internal/diagram"
)

func noopValidator(diagram.Diagram) []Finding { return nil }

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Axiom{ID: "test.one", Category: CategoryStructural, Validate: noopValidator})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	t.Run("duplicate id fails", func(t *testing.T) {
		err := r.Register(Axiom{ID: "test.one", Category: CategoryStructural, Validate: noopValidator})
		require.Error(t, err)
		assert.True(t, IsDuplicateAxiomError(err))

		var de *DuplicateAxiomError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "test.one", de.ID)
	})

	t.Run("empty id fails", func(t *testing.T) {
		err := r.Register(Axiom{Category: CategoryStructural, Validate: noopValidator})
		require.Error(t, err)
		assert.False(t, IsDuplicateAxiomError(err))
	})
}

func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	ax, ok := r.Axiom(AxiomUnit)
	require.True(t, ok)
	assert.Equal(t, CategoryStructural, ax.Category)
	assert.NotNil(t, ax.Validate)

	_, ok = r.Axiom("no.such.axiom")
	assert.False(t, ok)
}

func TestDefaultRegistryContents(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, 10, r.Len())
	assert.Len(t, r.AxiomsByCategory(CategoryStructural), 4)
	assert.Len(t, r.AxiomsByCategory(CategoryCartesian), 3)
	assert.Len(t, r.AxiomsByCategory(CategoryCocartesian), 3)

	// Registration order is deterministic: structural first.
	axioms := r.Axioms()
	require.NotEmpty(t, axioms)
	assert.Equal(t, AxiomAssociativity, axioms[0].ID)
}

func TestDefaultRegistryInstancesAreIsolated(t *testing.T) {
	a := DefaultRegistry()
	b := DefaultRegistry()

	require.NoError(t, a.Register(Axiom{ID: "test.extra", Category: CategoryStructural, Validate: noopValidator}))
	assert.Equal(t, 11, a.Len())
	assert.Equal(t, 10, b.Len())
}
