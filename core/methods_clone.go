// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies of a graph.
// Concurrency:
//   - Read lock on the source only; the clone is private until returned.

package core

// Clone returns a deep copy: node set, adjacency, degrees, and edge count.
// Removed ids stay removed on the clone.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:     g.nodes.Clone(),
		adj:       make([]map[int]struct{}, len(g.adj)),
		degree:    make([]int, len(g.degree)),
		edgeCount: g.edgeCount,
	}
	copy(clone.degree, g.degree)
	for id, set := range g.adj {
		if set == nil {
			continue
		}
		cp := make(map[int]struct{}, len(set))
		for nb := range set {
			cp[nb] = struct{}{}
		}
		clone.adj[id] = cp
	}

	return clone
}
