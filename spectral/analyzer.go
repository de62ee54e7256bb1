// SPDX-License-Identifier: MIT
// File: analyzer.go
// Role: spectra, eigencentrality, and per-step assessment over a Solver.

package spectral

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spectral/bfs"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
	"gonum.org/v1/gonum/floats"
)

// Analyzer computes spectral summaries with a fixed eigen solver.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	solver matrix.Solver
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSolver selects the eigen solver. Panics on nil.
func WithSolver(s matrix.Solver) Option {
	if s == nil {
		panic("spectral: WithSolver(nil)")
	}
	return func(a *Analyzer) { a.solver = s }
}

// NewAnalyzer returns an Analyzer using matrix.Gonum unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{solver: matrix.Gonum{}}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Spectrum returns the eigenvalues of g's kind matrix sorted descending.
// Laplacian eigenvalues below zero (round-off) are clamped to 0.
// An empty graph has an empty spectrum.
func (a *Analyzer) Spectrum(g *core.Graph, kind matrix.Kind) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("Spectrum: %w", matrix.ErrGraphNil)
	}
	if g.NodeCount() == 0 {
		return []float64{}, nil
	}
	m, err := matrix.Build(g, kind)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	values, _, err := a.solver.EigenSym(m)
	if err != nil {
		return nil, fmt.Errorf("Spectrum: %w", err)
	}
	if kind == matrix.Laplacian {
		for i, v := range values {
			if v < 0 {
				values[i] = 0
			}
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	return values, nil
}

// EigenCentrality returns the normalized eigencentrality of every live node
// in ascending id order. Graphs with fewer than two edges yield [0.5, 0.5].
func (a *Analyzer) EigenCentrality(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("EigenCentrality: %w", matrix.ErrGraphNil)
	}
	if g.EdgeCount() < 2 {
		return []float64{0.5, 0.5}, nil
	}
	m, err := matrix.Build(g, matrix.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("EigenCentrality: %w", err)
	}
	values, vecs, err := a.solver.EigenSym(m)
	if err != nil {
		return nil, fmt.Errorf("EigenCentrality: %w", err)
	}
	principal := floats.MaxIdx(values)
	vec, err := vecs.Column(principal)
	if err != nil {
		return nil, fmt.Errorf("EigenCentrality: %w", err)
	}
	for i, v := range vec {
		vec[i] = math.Abs(v)
	}
	total := floats.Sum(vec)
	if total <= 0 {
		return nil, fmt.Errorf("EigenCentrality: zero principal vector: %w", matrix.ErrMatrixEigenFailed)
	}
	floats.Scale(1/total, vec)

	return vec, nil
}

// Reference computes the target summary of g.
func (a *Analyzer) Reference(g *core.Graph) (Reference, error) {
	spectrum, err := a.Spectrum(g, matrix.Laplacian)
	if err != nil {
		return Reference{}, fmt.Errorf("Reference: %w", err)
	}
	centrality, err := a.EigenCentrality(g)
	if err != nil {
		return Reference{}, fmt.Errorf("Reference: %w", err)
	}
	components, err := bfs.CountComponents(g)
	if err != nil {
		return Reference{}, fmt.Errorf("Reference: %w", err)
	}

	return Reference{
		Spectrum:   spectrum,
		BulkIndex:  BulkIndex(spectrum),
		Centrality: centrality,
		Norm:       floats.Norm(spectrum, 2),
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Components: components,
	}, nil
}

// Assess summarizes the perturbed graph g against ref.
//
// Implementation:
//   - Stage 1: Laplacian spectrum and its bulk index b.
//   - Stage 2: eigencentrality, entropy, KL divergence, component count.
//   - Stage 3: RSS(spectrum, ref, b), ISD(ref, b), TSS.
func (a *Analyzer) Assess(ref Reference, g *core.Graph) (Snapshot, error) {
	spectrum, err := a.Spectrum(g, matrix.Laplacian)
	if err != nil {
		return Snapshot{}, fmt.Errorf("Assess: %w", err)
	}
	bulk := BulkIndex(spectrum)
	centrality, err := a.EigenCentrality(g)
	if err != nil {
		return Snapshot{}, fmt.Errorf("Assess: %w", err)
	}
	components, err := bfs.CountComponents(g)
	if err != nil {
		return Snapshot{}, fmt.Errorf("Assess: %w", err)
	}
	rss := RSS(spectrum, ref.Spectrum, bulk)
	isd := ISD(ref.Spectrum, bulk)

	return Snapshot{
		Spectrum:   spectrum,
		Centrality: centrality,
		BulkIndex:  bulk,
		RSS:        rss,
		ISD:        isd,
		TSS:        TSS(isd, rss),
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Components: components,
		Entropy:    NormalizedEntropy(centrality),
		KL:         KLFromUniform(centrality),
	}, nil
}
