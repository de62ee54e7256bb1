// SPDX-License-Identifier: MIT

// Package perturb removes one random node or edge from a model's working
// graph per call, then removes any node the removal left isolated.
package perturb

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/model"
)

// ErrInvalidPerturbationKind indicates a Kind other than Node or Edge.
var ErrInvalidPerturbationKind = errors.New("perturb: invalid perturbation kind")

// Kind selects what a perturbation removes.
type Kind int

const (
	Node Kind = iota + 1
	Edge
)

// String returns "node" or "edge".
func (k Kind) String() string {
	switch k {
	case Node:
		return "node"
	case Edge:
		return "edge"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "node"/"edge" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "node":
		return Node, nil
	case "edge":
		return Edge, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrInvalidPerturbationKind)
}

// MarshalText encodes k by name, so summaries and configs carry "node" or
// "edge" rather than an integer.
func (k Kind) MarshalText() ([]byte, error) {
	if k != Node && k != Edge {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(k), ErrInvalidPerturbationKind)
	}
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Outcome reports whether Apply changed the working graph.
type Outcome int

const (
	// Applied means one node or edge was removed.
	Applied Outcome = iota + 1
	// Aborted means the working graph was already degenerate (or had no
	// removable edge left) and nothing changed.
	Aborted
)

// String returns "applied" or "aborted".
func (o Outcome) String() string {
	if o == Applied {
		return "applied"
	}
	return "aborted"
}

// Result describes one Apply call.
type Result struct {
	Outcome Outcome
	Kind    Kind
	// Node is the chosen node for Node perturbations, -1 otherwise.
	Node int
	// Edge is the chosen edge for Edge perturbations.
	Edge core.Edge
	// Removed lists every node deleted by this call: the chosen node (if
	// any) first, then isolated nodes in ascending order.
	Removed []int
}

// Engine draws perturbations from its own random source.
// An Engine is not safe for concurrent use; give each sample its own.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an Engine drawing from rng. Panics on nil.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		panic("perturb: NewEngine(nil)")
	}
	return &Engine{rng: rng}
}

// NewSeededEngine returns an Engine with a deterministic source.
func NewSeededEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

// Apply performs one perturbation of kind on m's working graph.
//
// Implementation:
//   - Stage 1: reject kinds other than Node/Edge (no mutation).
//   - Stage 2: a degenerate working graph yields Outcome Aborted.
//   - Stage 3 (Node): draw a node uniformly, snapshot its neighbors, remove
//     it, then remove each snapshot neighbor whose degree fell to 0.
//   - Stage 3 (Edge): draw an entry of the auxiliary edge list uniformly and
//     pop it (swap-with-last); stale entries are discarded and redrawn;
//     remove the edge and any endpoint whose degree fell to 0.
//
// Errors:
//   - ErrInvalidPerturbationKind.
//   - core errors if the working graph is inconsistent with the edge list.
func (e *Engine) Apply(m *model.Model, kind Kind) (Result, error) {
	if kind != Node && kind != Edge {
		return Result{}, fmt.Errorf("Apply(%v): %w", kind, ErrInvalidPerturbationKind)
	}
	res := Result{Outcome: Aborted, Kind: kind, Node: -1}
	if m.WorkingIsDegenerate() {
		return res, nil
	}
	if kind == Node {
		return e.removeNode(m, res)
	}

	return e.removeEdge(m, res)
}

func (e *Engine) removeNode(m *model.Model, res Result) (Result, error) {
	g := m.Working()
	id, err := g.NodeAt(e.rng.Intn(g.NodeCount()))
	if err != nil {
		return res, fmt.Errorf("Apply(node): %w", err)
	}
	neighbors, err := m.RemoveNode(id)
	if err != nil {
		return res, fmt.Errorf("Apply(node): %w", err)
	}
	res.Outcome = Applied
	res.Node = id
	res.Removed = append(res.Removed, id)
	for _, nb := range neighbors {
		removed, err := removeIfIsolated(m, nb)
		if err != nil {
			return res, fmt.Errorf("Apply(node): %w", err)
		}
		if removed {
			res.Removed = append(res.Removed, nb)
		}
	}

	return res, nil
}

func (e *Engine) removeEdge(m *model.Model, res Result) (Result, error) {
	for m.EdgeListLen() > 0 {
		edge := m.PopEdge(e.rng.Intn(m.EdgeListLen()))
		err := m.RemoveEdge(edge)
		if errors.Is(err, core.ErrEdgeNotFound) {
			continue
		}
		if err != nil {
			return res, fmt.Errorf("Apply(edge): %w", err)
		}
		res.Outcome = Applied
		res.Edge = edge
		for _, end := range []int{edge.U, edge.V} {
			removed, err := removeIfIsolated(m, end)
			if err != nil {
				return res, fmt.Errorf("Apply(edge): %w", err)
			}
			if removed {
				res.Removed = append(res.Removed, end)
			}
		}

		return res, nil
	}

	return res, nil
}

func removeIfIsolated(m *model.Model, id int) (bool, error) {
	g := m.Working()
	if !g.HasNode(id) {
		return false, nil
	}
	d, err := g.Degree(id)
	if err != nil {
		return false, err
	}
	if d != 0 {
		return false, nil
	}
	if _, err = m.RemoveNode(id); err != nil {
		return false, err
	}

	return true, nil
}
