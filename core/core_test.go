// SPDX-License-Identifier: MIT
// Package core_test contains unit tests for core.Graph and core.LabeledGraph.

package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/spectral/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGraph builds a graph of n nodes with the given edges.
func mustGraph(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestNewGraph(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []int{0, 1, 2, 3}, g.Nodes())
	assert.Len(t, g.IsolatedNodes(), 4)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NodeCount())

	_, err = core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrNegativeSize)
}

func TestAddEdge_Errors(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 3, [2]int{0, 1})
	tests := []struct {
		name string
		u, v int
		want error
	}{
		{"loop", 1, 1, core.ErrLoopNotAllowed},
		{"duplicate", 1, 0, core.ErrMultiEdgeNotAllowed},
		{"out of range", 0, 7, core.ErrNodeNotFound},
		{"negative", -1, 0, core.ErrNodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddEdge(tc.u, tc.v), tc.want)
		})
	}
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDegreeTracksMutations(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2})
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	require.NoError(t, g.RemoveEdge(2, 0))
	d, _ = g.Degree(0)
	assert.Equal(t, 2, d)
	d, _ = g.Degree(2)
	assert.Equal(t, 1, d)
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 3, g.EdgeCount())

	require.ErrorIs(t, g.RemoveEdge(0, 2), core.ErrEdgeNotFound)
}

func TestRemoveNode_ReturnsNeighborSnapshot(t *testing.T) {
	t.Parallel()

	// star: hub 0 with leaves 1..3
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	nbrs, err := g.RemoveNode(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nbrs)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []int{1, 2, 3}, g.IsolatedNodes())
	assert.False(t, g.HasNode(0))

	_, err = g.RemoveNode(0)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree(0)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(0, 1), core.ErrNodeNotFound)
}

func TestIndexAndNodeAt(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 5)
	_, err := g.RemoveNode(1)
	require.NoError(t, err)
	_, err = g.RemoveNode(3)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, g.Nodes())
	for want, id := range []int{0, 2, 4} {
		idx, ok := g.Index(id)
		require.True(t, ok)
		assert.Equal(t, want, idx)
		got, err := g.NodeAt(want)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	_, ok := g.Index(3)
	assert.False(t, ok)
	_, err = g.NodeAt(3)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEdgesSortedCanonical(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 4, [2]int{3, 1}, [2]int{2, 0}, [2]int{1, 0})
	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}, {1, 3}}, g.Edges())
	assert.Equal(t, core.Edge{U: 1, V: 3}, core.NewEdge(3, 1))
	assert.Equal(t, "1-3", core.NewEdge(3, 1).String())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	c := g.Clone()
	_, err := c.RemoveNode(1)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.Equal(t, 2, c.NodeCount())
	assert.Equal(t, 0, c.EdgeCount())
	assert.Equal(t, 3, c.Capacity())
}

func TestLabeledGraph_Canonical(t *testing.T) {
	t.Parallel()

	lg := core.NewLabeledGraph()
	require.NoError(t, lg.AddNode("Center"))
	require.NoError(t, lg.AddEdge("Center", "a"))
	require.NoError(t, lg.AddEdge("b", "Center"))
	require.NoError(t, lg.AddNode("a"))
	require.ErrorIs(t, lg.AddEdge("a", "a"), core.ErrLoopNotAllowed)
	require.ErrorIs(t, lg.AddEdge("a", "Center"), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, lg.AddNode(""), core.ErrEmptyLabel)

	g, labels, err := lg.Canonical()
	require.NoError(t, err)
	assert.Equal(t, []string{"Center", "a", "b"}, labels)
	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}}, g.Edges())
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 50)
	for i := 1; i < 50; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}
	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = g.Edges()
				_, _ = g.Neighbors(0)
				_ = g.Clone()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 49, g.EdgeCount())
}
