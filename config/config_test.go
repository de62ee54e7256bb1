// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := config.New()
	assert.Equal(t, "info", c.LogLevel())
	assert.Equal(t, "console", c.LogFormat())
	assert.Equal(t, "data", c.OutputDir())
	assert.Equal(t, 10, c.Samples())
	assert.Positive(t, c.Workers())

	s, err := c.Solver()
	require.NoError(t, err)
	assert.Equal(t, matrix.Gonum{}, s)
}

func TestLoadFromFile_AndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectral.yaml")
	body := "log:\n  level: debug\nrun:\n  samples: 4\nsolver:\n  kind: jacobi\n  max_iterations: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c := config.New()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, "debug", c.LogLevel())
	assert.Equal(t, 4, c.Samples())

	s, err := c.Solver()
	require.NoError(t, err)
	assert.Equal(t, matrix.Jacobi{Tol: matrix.DefaultJacobiTol, MaxIter: 500}, s)

	c.Set(config.KeyRunSamples, 7)
	assert.Equal(t, 7, c.Samples())

	require.Error(t, config.New().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SPECTRAL_OUTPUT_DIR", "/tmp/spectra")
	t.Setenv("SPECTRAL_RUN_WORKERS", "3")
	c := config.New()
	assert.Equal(t, "/tmp/spectra", c.OutputDir())
	assert.Equal(t, 3, c.Workers())
}

func TestUnknownSolver(t *testing.T) {
	c := config.New()
	c.Set(config.KeySolverKind, "lanczos")
	_, err := c.Solver()
	require.ErrorIs(t, err, matrix.ErrUnknownSolver)
}

const gridYAML = `
samples: 3
seed: 42
experiments:
  - family: complete
    params: {num_nodes: 6}
    kinds: [node, edge]
  - family: random_binomial
    params: {num_nodes: 12, edge_prob: 0.25}
    kinds: [edge]
    samples: 5
  - family: star
    params: {num_leaves: 4}
`

func TestParseGrid(t *testing.T) {
	t.Parallel()

	g, err := config.ParseGrid([]byte(gridYAML))
	require.NoError(t, err)
	require.Len(t, g.Experiments, 3)
	assert.Equal(t, int64(42), g.Seed)

	spec, err := g.Experiments[1].Spec()
	require.NoError(t, err)
	assert.Equal(t, builder.RandomBinomialSpec{Nodes: 12, Prob: 0.25}, spec)
	assert.Equal(t, 5, g.SamplesFor(g.Experiments[1]))
	assert.Equal(t, 3, g.SamplesFor(g.Experiments[0]))

	kinds, err := g.Experiments[2].PerturbationKinds()
	require.NoError(t, err)
	assert.Equal(t, []perturb.Kind{perturb.Node, perturb.Edge}, kinds)
}

func TestParseGrid_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want error
	}{
		"empty":       {"samples: 2\n", config.ErrInvalidGrid},
		"bad family":  {"experiments:\n  - family: petersen\n", builder.ErrInvalidFamily},
		"missing":     {"experiments:\n  - family: path\n", builder.ErrMissingParam},
		"bad kind":    {"experiments:\n  - family: path\n    params: {num_nodes: 3}\n    kinds: [vertex]\n", perturb.ErrInvalidPerturbationKind},
		"neg samples": {"samples: -1\nexperiments:\n  - family: path\n    params: {num_nodes: 3}\n", config.ErrInvalidGrid},
		"bad prob":    {"experiments:\n  - family: random_binomial\n    params: {num_nodes: 8, edge_prob: 2}\n", builder.ErrInvalidProbability},
	}
	for name, tc := range tests {
		_, err := config.ParseGrid([]byte(tc.body))
		require.ErrorIs(t, err, tc.want, name)
	}

	_, err := config.ParseGrid([]byte("experiments: [oops"))
	require.Error(t, err)
}

func TestLoadGrid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gridYAML), 0o644))
	g, err := config.LoadGrid(path)
	require.NoError(t, err)
	assert.Len(t, g.Experiments, 3)

	_, err = config.LoadGrid(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
