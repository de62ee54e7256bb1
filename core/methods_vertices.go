// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Node queries, removal, and the dense index space (rank/select).
// Determinism:
//   - Nodes() and Neighbors() return ascending ids.

package core

import (
	"fmt"
	"sort"
)

// HasNode reports whether id is a live node.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live(id)
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return int(g.nodes.GetCardinality())
}

// Nodes returns the live node ids in ascending order.
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.nodes.GetCardinality())
	it := g.nodes.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Index returns the position of id within Nodes(), i.e. its row in any
// matrix built over the current node set.
//
// Complexity: O(log n).
func (g *Graph) Index(id int) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.live(id) {
		return 0, false
	}

	return int(g.nodes.Rank(uint32(id))) - 1, true
}

// NodeAt returns the i-th live node in ascending order.
// Returns ErrNodeNotFound when i is outside [0, NodeCount()).
//
// Complexity: O(log n).
func (g *Graph) NodeAt(i int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || uint64(i) >= g.nodes.GetCardinality() {
		return 0, fmt.Errorf("NodeAt(%d): %w", i, ErrNodeNotFound)
	}
	v, err := g.nodes.Select(uint32(i))
	if err != nil {
		return 0, fmt.Errorf("NodeAt(%d): %w", i, ErrNodeNotFound)
	}

	return int(v), nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.live(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return g.degree[id], nil
}

// Neighbors returns the neighbor ids of id in ascending order.
// The returned slice is a snapshot; later mutations do not affect it.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.live(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	return g.neighborsLocked(id), nil
}

func (g *Graph) neighborsLocked(id int) []int {
	out := make([]int, 0, len(g.adj[id]))
	for nb := range g.adj[id] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out
}

// RemoveNode deletes id and all incident edges.
//
// Implementation:
//   - Stage 1: snapshot the neighbor set (ascending).
//   - Stage 2: detach id from each neighbor, decrementing their degrees.
//   - Stage 3: drop id from the node bitmap.
//
// Returns:
//   - []int: the neighbors id had before removal, so callers can inspect
//     which of them became isolated.
//
// Errors:
//   - ErrNodeNotFound if id is not live.
//
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) RemoveNode(id int) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live(id) {
		return nil, fmt.Errorf("RemoveNode(%d): %w", id, ErrNodeNotFound)
	}
	neighbors := g.neighborsLocked(id)
	for _, nb := range neighbors {
		delete(g.adj[nb], id)
		g.degree[nb]--
	}
	g.edgeCount -= len(neighbors)
	g.adj[id] = nil
	g.degree[id] = 0
	g.nodes.Remove(uint32(id))

	return neighbors, nil
}

// IsolatedNodes returns the live nodes with degree 0, ascending.
func (g *Graph) IsolatedNodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	it := g.nodes.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if g.degree[v] == 0 {
			out = append(out, v)
		}
	}

	return out
}
