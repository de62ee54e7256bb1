// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion, removal, and enumeration.

package core

import (
	"fmt"
	"sort"
)

// AddEdge joins u and v.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is not live.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live(u) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if !g.live(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.degree[u]++
	g.degree[v]++
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge {u,v}.
// Returns ErrEdgeNotFound if it does not exist (including when an endpoint
// has already been removed).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live(u) || !g.live(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.degree[u]--
	g.degree[v]--
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} is present.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.live(u) || !g.live(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, in canonical orientation, sorted by (U,V).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	it := g.nodes.Iterator()
	for it.HasNext() {
		u := int(it.Next())
		for v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
