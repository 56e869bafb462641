package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "compose_normalize.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "compose_normalize", s.Name)
	assert.Len(t, s.Steps, 5)
	assert.Equal(t, "A", s.Generators["a"].Label)
	require.NotNil(t, s.Expect)
	require.NotNil(t, s.Expect.Valid)
	assert.True(t, *s.Expect.Valid)
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"missing name",
			"steps:\n  - op: empty\n",
		},
		{
			"no steps",
			"name: hollow\n",
		},
		{
			"unknown op",
			"name: bad\nsteps:\n  - op: teleport\n",
		},
		{
			"diagram without generator",
			"name: bad\nsteps:\n  - op: diagram\n",
		},
		{
			"compose without operands",
			"name: bad\nsteps:\n  - op: compose\n    left: d1\n",
		},
		{
			"rewrite without endpoints",
			"name: bad\nsteps:\n  - op: rewrite\n    of: d1\n",
		},
		{
			"validate without target",
			"name: bad\nsteps:\n  - op: validate\n",
		},
		{
			"malformed yaml",
			"name: [unclosed\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.src))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
