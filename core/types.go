// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph and Edge types, sentinel errors, the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards nodes, adjacency, degrees, and edge count.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates NewGraph was asked for a negative node count.
	ErrNegativeSize = errors.New("core: negative graph size")

	// ErrNodeNotFound indicates an operation referenced a missing or removed node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEmptyLabel indicates a LabeledGraph received an empty node label.
	ErrEmptyLabel = errors.New("core: node label is empty")
)

// Edge is an undirected edge in canonical orientation (U < V).
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical Edge joining u and v.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// String renders the edge as "U-V".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// Graph is an undirected simple graph on dense integer ids.
//
// Invariants:
//   - adj[v] is nil iff v is not live.
//   - degree[v] == len(adj[v]) for every live v.
//   - edgeCount == sum(degree)/2.
type Graph struct {
	mu        sync.RWMutex
	nodes     *roaring.Bitmap
	adj       []map[int]struct{}
	degree    []int
	edgeCount int
}

// NewGraph creates a graph with n isolated nodes 0..n-1.
// Returns ErrNegativeSize when n < 0.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeSize)
	}
	g := &Graph{
		nodes:  roaring.New(),
		adj:    make([]map[int]struct{}, n),
		degree: make([]int, n),
	}
	if n > 0 {
		g.nodes.AddRange(0, uint64(n))
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
	}

	return g, nil
}

// Capacity returns the size of the id space this graph was created with.
func (g *Graph) Capacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// live reports whether id is a present node. Caller holds g.mu.
func (g *Graph) live(id int) bool {
	return id >= 0 && id < len(g.adj) && g.adj[id] != nil
}
