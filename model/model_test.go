// SPDX-License-Identifier: MIT
package model_test

import (
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TargetAndWorkingCopy(t *testing.T) {
	t.Parallel()

	m, err := model.New(builder.StarSpec{Leaves: 3})
	require.NoError(t, err)
	assert.Equal(t, "S_3", m.Name())
	assert.Equal(t, []string{builder.CenterNodeID, "1", "2", "3"}, m.Labels())
	assert.Equal(t, 3, m.Reference().BulkIndex)
	assert.Equal(t, 3, m.EdgeListLen())

	_, err = m.RemoveNode(0)
	require.NoError(t, err)
	target, err := m.Graph(model.Target)
	require.NoError(t, err)
	working, err := m.Graph(model.Perturbed)
	require.NoError(t, err)
	assert.Equal(t, 4, target.NodeCount())
	assert.Equal(t, 3, working.NodeCount())

	m.ResetWorkingCopy()
	assert.Equal(t, 4, m.Working().NodeCount())
	assert.Equal(t, 3, m.Working().EdgeCount())
}

func TestNew_BuilderErrorsSurface(t *testing.T) {
	t.Parallel()

	_, err := model.New(builder.CycleSpec{Nodes: 2})
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	spec, err := builder.Resolve("dodecahedron", builder.Params{})
	require.ErrorIs(t, err, builder.ErrInvalidFamily)
	assert.Nil(t, spec)
}

func TestIsDegenerate(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]bool{0: true, 1: true, 2: false} {
		g, err := core.NewGraph(n)
		require.NoError(t, err)
		assert.Equal(t, want, model.IsDegenerate(g), "n=%d", n)
	}
}

func TestPopEdge_SwapWithLast(t *testing.T) {
	t.Parallel()

	m, err := model.New(builder.PathSpec{Nodes: 4})
	require.NoError(t, err)
	require.Equal(t, 3, m.EdgeListLen())

	e := m.PopEdge(0)
	assert.Equal(t, core.Edge{U: 0, V: 1}, e)
	assert.Equal(t, 2, m.EdgeListLen())
	// the former last entry now occupies slot 0
	assert.Equal(t, core.Edge{U: 2, V: 3}, m.PopEdge(0))
	assert.Equal(t, core.Edge{U: 1, V: 2}, m.PopEdge(0))
	assert.Equal(t, 0, m.EdgeListLen())
}

func TestGraphChoice(t *testing.T) {
	t.Parallel()

	m, err := model.New(builder.PathSpec{Nodes: 3})
	require.NoError(t, err)

	_, err = m.Graph(model.Choice(7))
	require.ErrorIs(t, err, model.ErrInvalidGraphChoice)
	_, err = m.Matrix(model.Choice(0), matrix.Laplacian)
	require.ErrorIs(t, err, model.ErrInvalidGraphChoice)
	_, err = model.ParseChoice("original")
	require.ErrorIs(t, err, model.ErrInvalidGraphChoice)

	c, err := model.ParseChoice("perturbed")
	require.NoError(t, err)
	assert.Equal(t, model.Perturbed, c)

	l, err := m.Matrix(model.Target, matrix.Laplacian)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, -1, 0}, {-1, 2, -1}, {0, -1, 1}}, l.ToRows())

	s, err := m.Spectrum(model.Target, matrix.Laplacian)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 1, 0}, s, 1e-9)
}

func TestFork_SharesTargetOwnsWorking(t *testing.T) {
	t.Parallel()

	m, err := model.New(builder.CompleteSpec{Nodes: 4})
	require.NoError(t, err)
	f := m.Fork()
	_, err = f.RemoveNode(2)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Working().NodeCount())
	assert.Equal(t, 3, f.Working().NodeCount())
	assert.Equal(t, m.Reference(), f.Reference())
	ft, _ := f.Graph(model.Target)
	mt, _ := m.Graph(model.Target)
	assert.Same(t, mt, ft)
}

func TestFromGraph(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	m, err := model.FromGraph("custom", g)
	require.NoError(t, err)
	assert.Nil(t, m.Spec())
	assert.Equal(t, 1, m.Reference().BulkIndex)

	_, err = g.RemoveNode(0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Working().NodeCount())

	_, err = model.FromGraph("nil", nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}
