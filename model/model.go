// SPDX-License-Identifier: MIT
// File: model.go
// Role: GraphModel construction, working-copy lifecycle, and queries.

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/rs/zerolog"
)

// ErrInvalidGraphChoice indicates a Choice other than Target or Perturbed.
var ErrInvalidGraphChoice = errors.New("model: invalid graph choice")

// Choice selects the target or the working (perturbed) graph.
type Choice int

const (
	Target Choice = iota + 1
	Perturbed
)

// String returns "target" or "perturbed".
func (c Choice) String() string {
	switch c {
	case Target:
		return "target"
	case Perturbed:
		return "perturbed"
	}

	return fmt.Sprintf("Choice(%d)", int(c))
}

// ParseChoice maps "target"/"perturbed" to a Choice.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "target":
		return Target, nil
	case "perturbed":
		return Perturbed, nil
	}

	return 0, fmt.Errorf("ParseChoice(%q): %w", s, ErrInvalidGraphChoice)
}

// Model is a target graph plus its working copy.
//
// Invariants:
//   - target is never mutated after New/FromGraph returns.
//   - working's node set is a subset of target's.
//   - every live edge of working appears in edges; entries may be stale.
type Model struct {
	name     string
	spec     builder.Spec
	labels   []string
	target   *core.Graph
	ref      spectral.Reference
	analyzer *spectral.Analyzer
	logger   zerolog.Logger

	working *core.Graph
	edges   []core.Edge
}

// Option configures a Model.
type Option func(*options)

type options struct {
	analyzer *spectral.Analyzer
	builder  []builder.BuilderOption
	logger   zerolog.Logger
}

// WithAnalyzer sets the analyzer used for the target reference and queries.
func WithAnalyzer(a *spectral.Analyzer) Option {
	return func(o *options) {
		if a != nil {
			o.analyzer = a
		}
	}
}

// WithBuilderOptions forwards options to the family constructor (e.g. a seed
// for random families).
func WithBuilderOptions(bopts ...builder.BuilderOption) Option {
	return func(o *options) { o.builder = append(o.builder, bopts...) }
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolve(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.analyzer == nil {
		o.analyzer = spectral.NewAnalyzer()
	}

	return o
}

// New builds spec, canonicalizes it, computes the target Reference, and
// initializes the working copy.
//
// Errors:
//   - builder sentinels (ErrInvalidFamily, ErrTooFewVertices, ...).
//   - spectral/matrix failures while computing the Reference.
func New(spec builder.Spec, opts ...Option) (*Model, error) {
	o := resolve(opts)
	g, labels, err := builder.Build(spec, o.builder...)
	if err != nil {
		return nil, fmt.Errorf("model.New: %w", err)
	}
	m, err := newModel(spec.Name(), spec, g, labels, o)
	if err != nil {
		return nil, fmt.Errorf("model.New(%s): %w", spec.Name(), err)
	}

	return m, nil
}

// FromGraph wraps an already canonical graph. g is cloned; the caller keeps
// ownership of its copy.
func FromGraph(name string, g *core.Graph, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("model.FromGraph: %w", matrix.ErrGraphNil)
	}
	m, err := newModel(name, nil, g.Clone(), nil, resolve(opts))
	if err != nil {
		return nil, fmt.Errorf("model.FromGraph(%s): %w", name, err)
	}

	return m, nil
}

func newModel(name string, spec builder.Spec, g *core.Graph, labels []string, o options) (*Model, error) {
	ref, err := o.analyzer.Reference(g)
	if err != nil {
		return nil, err
	}
	m := &Model{
		name:     name,
		spec:     spec,
		labels:   labels,
		target:   g,
		ref:      ref,
		analyzer: o.analyzer,
		logger:   o.logger.With().Str("graph", name).Logger(),
	}
	m.ResetWorkingCopy()
	m.logger.Debug().
		Int("nodes", ref.Nodes).
		Int("edges", ref.Edges).
		Int("bulk_index", ref.BulkIndex).
		Msg("target ready")

	return m, nil
}

// Fork returns a Model sharing the immutable target, labels, reference and
// analyzer, with its own fresh working copy.
func (m *Model) Fork() *Model {
	f := &Model{
		name:     m.name,
		spec:     m.spec,
		labels:   m.labels,
		target:   m.target,
		ref:      m.ref,
		analyzer: m.analyzer,
		logger:   m.logger,
	}
	f.ResetWorkingCopy()

	return f
}

// ResetWorkingCopy replaces the working copy with a clone of the target and
// rebuilds the auxiliary edge list.
func (m *Model) ResetWorkingCopy() {
	m.working = m.target.Clone()
	m.edges = m.working.Edges()
}

// IsDegenerate reports whether g has fewer than two nodes.
func IsDegenerate(g *core.Graph) bool { return g.NodeCount() < 2 }

// WorkingIsDegenerate reports IsDegenerate for the working copy.
func (m *Model) WorkingIsDegenerate() bool { return IsDegenerate(m.working) }

// RemoveNode deletes id from the working copy and returns its neighbors
// before removal.
func (m *Model) RemoveNode(id int) ([]int, error) { return m.working.RemoveNode(id) }

// RemoveEdge deletes e from the working copy. The auxiliary list is not
// touched; stale entries are skipped by PopEdge callers.
func (m *Model) RemoveEdge(e core.Edge) error { return m.working.RemoveEdge(e.U, e.V) }

// EdgeListLen returns the number of entries in the auxiliary edge list.
func (m *Model) EdgeListLen() int { return len(m.edges) }

// PopEdge removes entry i of the auxiliary edge list by swapping it with the
// last entry, and returns it. Panics if i is out of range.
func (m *Model) PopEdge(i int) core.Edge {
	last := len(m.edges) - 1
	e := m.edges[i]
	m.edges[i] = m.edges[last]
	m.edges = m.edges[:last]

	return e
}

// Working returns the working copy. Callers must not retain it across
// ResetWorkingCopy.
func (m *Model) Working() *core.Graph { return m.working }

// Graph returns the chosen graph.
func (m *Model) Graph(c Choice) (*core.Graph, error) {
	switch c {
	case Target:
		return m.target, nil
	case Perturbed:
		return m.working, nil
	}

	return nil, fmt.Errorf("Graph(%v): %w", c, ErrInvalidGraphChoice)
}

// Matrix returns the kind matrix of the chosen graph.
func (m *Model) Matrix(c Choice, kind matrix.Kind) (*matrix.Dense, error) {
	g, err := m.Graph(c)
	if err != nil {
		return nil, err
	}

	return matrix.Build(g, kind)
}

// Spectrum returns the descending spectrum of the chosen graph's kind matrix.
func (m *Model) Spectrum(c Choice, kind matrix.Kind) ([]float64, error) {
	g, err := m.Graph(c)
	if err != nil {
		return nil, err
	}

	return m.analyzer.Spectrum(g, kind)
}

// Name returns the display name, e.g. "S_5".
func (m *Model) Name() string { return m.name }

// Spec returns the family spec, or nil for FromGraph models.
func (m *Model) Spec() builder.Spec { return m.spec }

// Labels returns the builder label of each canonical id (nil for FromGraph).
func (m *Model) Labels() []string { return m.labels }

// Reference returns the cached target summary.
func (m *Model) Reference() spectral.Reference { return m.ref }

// Analyzer returns the analyzer the model was built with.
func (m *Model) Analyzer() *spectral.Analyzer { return m.analyzer }

// Logger returns the model-scoped logger.
func (m *Model) Logger() zerolog.Logger { return m.logger }
