// SPDX-License-Identifier: MIT
// File: labeled.go
// Role: Label-keyed graph used during construction, and its canonicalization
// into a dense-id Graph.
// Determinism:
//   - Canonical ids follow first-insertion order of labels.

package core

import "fmt"

// LabeledGraph collects nodes and edges keyed by arbitrary string labels.
// It is not safe for concurrent use; it lives only while a family builds.
type LabeledGraph struct {
	labels []string
	index  map[string]int
	edges  []Edge
	seen   map[Edge]struct{}
}

// NewLabeledGraph returns an empty LabeledGraph.
func NewLabeledGraph() *LabeledGraph {
	return &LabeledGraph{
		index: make(map[string]int),
		seen:  make(map[Edge]struct{}),
	}
}

// AddNode registers label if unseen. Adding an existing label is a no-op.
func (lg *LabeledGraph) AddNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	lg.ensure(label)

	return nil
}

func (lg *LabeledGraph) ensure(label string) int {
	if id, ok := lg.index[label]; ok {
		return id
	}
	id := len(lg.labels)
	lg.labels = append(lg.labels, label)
	lg.index[label] = id

	return id
}

// AddEdge joins two labels, registering them first if needed.
//
// Errors:
//   - ErrEmptyLabel, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
func (lg *LabeledGraph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyLabel
	}
	if a == b {
		return fmt.Errorf("AddEdge(%q,%q): %w", a, b, ErrLoopNotAllowed)
	}
	e := NewEdge(lg.ensure(a), lg.ensure(b))
	if _, dup := lg.seen[e]; dup {
		return fmt.Errorf("AddEdge(%q,%q): %w", a, b, ErrMultiEdgeNotAllowed)
	}
	lg.seen[e] = struct{}{}
	lg.edges = append(lg.edges, e)

	return nil
}

// NodeCount returns the number of labels registered.
func (lg *LabeledGraph) NodeCount() int { return len(lg.labels) }

// EdgeCount returns the number of edges registered.
func (lg *LabeledGraph) EdgeCount() int { return len(lg.edges) }

// Labels returns a copy of the labels in insertion order.
func (lg *LabeledGraph) Labels() []string {
	out := make([]string, len(lg.labels))
	copy(out, lg.labels)

	return out
}

// Canonical relabels nodes to 0..n-1 in insertion order and returns the
// dense Graph plus the label of each id.
func (lg *LabeledGraph) Canonical() (*Graph, []string, error) {
	g, err := NewGraph(len(lg.labels))
	if err != nil {
		return nil, nil, err
	}
	for _, e := range lg.edges {
		if err = g.AddEdge(e.U, e.V); err != nil {
			return nil, nil, fmt.Errorf("Canonical: %w", err)
		}
	}

	return g, lg.Labels(), nil
}
