// SPDX-License-Identifier: MIT
// File: build.go
// Role: Laplacian and adjacency matrices of a core.Graph.
// Determinism:
//   - Rows follow ascending live node id.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Kind selects which matrix Build produces.
type Kind int

const (
	// Laplacian is D − A.
	Laplacian Kind = iota + 1
	// Adjacency is A.
	Adjacency
)

// String returns "laplacian" or "adjacency".
func (k Kind) String() string {
	switch k {
	case Laplacian:
		return "laplacian"
	case Adjacency:
		return "adjacency"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "laplacian"/"adjacency" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "laplacian":
		return Laplacian, nil
	case "adjacency":
		return Adjacency, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Build returns the kind matrix of g over its live nodes.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrUnknownKind.
//
// Complexity: O(V² + E log V).
func Build(g *core.Graph, kind Kind) (*Dense, error) {
	const op = "Build"
	if g == nil {
		return nil, matrixErrorf(op, ErrGraphNil)
	}
	if kind != Laplacian && kind != Adjacency {
		return nil, matrixErrorf(op, fmt.Errorf("%v: %w", kind, ErrUnknownKind))
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, matrixErrorf(op, ErrEmptyGraph)
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for _, e := range g.Edges() {
		iu, okU := g.Index(e.U)
		iv, okV := g.Index(e.V)
		if !okU || !okV {
			return nil, matrixErrorf(op, fmt.Errorf("edge %v: %w", e, core.ErrNodeNotFound))
		}
		if kind == Laplacian {
			m.data[iu*n+iv] = -1
			m.data[iv*n+iu] = -1
			m.data[iu*n+iu]++
			m.data[iv*n+iv]++
		} else {
			m.data[iu*n+iv] = 1
			m.data[iv*n+iu] = 1
		}
	}

	return m, nil
}
