// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// spec.go - one parameter struct per family, all implementing Spec.

package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/spectral/core"
)

// Spec describes a concrete member of a graph family.
type Spec interface {
	// Family returns the family tag.
	Family() Family
	// Name returns the display name, e.g. "K_10" or "B_50_0.1".
	Name() string
	// Constructor returns the closure that builds the graph.
	Constructor() Constructor
	// ExpectedNodes is the (mean) node count of a freshly built member.
	ExpectedNodes() float64
	// ExpectedEdges is the (mean) edge count of a freshly built member.
	ExpectedEdges() float64
}

// Validator is implemented by specs whose parameters can be checked before
// any graph is built. Stochastic families use it to reject bad input once
// instead of once per sample.
type Validator interface {
	Validate() error
}

// Build constructs spec and canonicalizes it to dense ids.
func Build(spec Spec, opts ...BuilderOption) (*core.Graph, []string, error) {
	if spec == nil {
		return nil, nil, fmt.Errorf("Build: nil spec: %w", ErrInvalidFamily)
	}

	return BuildCanonical(opts, spec.Constructor())
}

// CompleteSpec is K_n.
type CompleteSpec struct{ Nodes int }

func (s CompleteSpec) Family() Family           { return FamilyComplete }
func (s CompleteSpec) Name() string             { return fmt.Sprintf("K_%d", s.Nodes) }
func (s CompleteSpec) Constructor() Constructor { return Complete(s.Nodes) }
func (s CompleteSpec) ExpectedNodes() float64   { return float64(s.Nodes) }
func (s CompleteSpec) ExpectedEdges() float64 {
	return float64(s.Nodes) * float64(s.Nodes-1) / 2
}

// CompleteBipartiteSpec is K_{Left,Right}.
type CompleteBipartiteSpec struct{ Left, Right int }

func (s CompleteBipartiteSpec) Family() Family { return FamilyCompleteBipartite }
func (s CompleteBipartiteSpec) Name() string   { return fmt.Sprintf("K_%d_%d", s.Left, s.Right) }
func (s CompleteBipartiteSpec) Constructor() Constructor {
	return CompleteBipartite(s.Left, s.Right)
}
func (s CompleteBipartiteSpec) ExpectedNodes() float64 { return float64(s.Left + s.Right) }
func (s CompleteBipartiteSpec) ExpectedEdges() float64 { return float64(s.Left * s.Right) }

// StarSpec is S_L: a hub plus Leaves leaves.
type StarSpec struct{ Leaves int }

func (s StarSpec) Family() Family           { return FamilyStar }
func (s StarSpec) Name() string             { return fmt.Sprintf("S_%d", s.Leaves) }
func (s StarSpec) Constructor() Constructor { return Star(s.Leaves) }
func (s StarSpec) ExpectedNodes() float64   { return float64(s.Leaves + 1) }
func (s StarSpec) ExpectedEdges() float64   { return float64(s.Leaves) }

// PathSpec is P_n.
type PathSpec struct{ Nodes int }

func (s PathSpec) Family() Family           { return FamilyPath }
func (s PathSpec) Name() string             { return fmt.Sprintf("P_%d", s.Nodes) }
func (s PathSpec) Constructor() Constructor { return Path(s.Nodes) }
func (s PathSpec) ExpectedNodes() float64   { return float64(s.Nodes) }
func (s PathSpec) ExpectedEdges() float64   { return float64(s.Nodes - 1) }

// CycleSpec is C_n.
type CycleSpec struct{ Nodes int }

func (s CycleSpec) Family() Family           { return FamilyCycle }
func (s CycleSpec) Name() string             { return fmt.Sprintf("C_%d", s.Nodes) }
func (s CycleSpec) Constructor() Constructor { return Cycle(s.Nodes) }
func (s CycleSpec) ExpectedNodes() float64   { return float64(s.Nodes) }
func (s CycleSpec) ExpectedEdges() float64   { return float64(s.Nodes) }

// HypercubeSpec is Q_d.
type HypercubeSpec struct{ Dim int }

func (s HypercubeSpec) Family() Family           { return FamilyHypercube }
func (s HypercubeSpec) Name() string             { return fmt.Sprintf("Q_%d", s.Dim) }
func (s HypercubeSpec) Constructor() Constructor { return Hypercube(s.Dim) }
func (s HypercubeSpec) ExpectedNodes() float64   { return math.Exp2(float64(s.Dim)) }
func (s HypercubeSpec) ExpectedEdges() float64 {
	return float64(s.Dim) * math.Exp2(float64(s.Dim-1))
}

// RandomBinomialSpec is G(n,p) with isolated nodes dropped.
type RandomBinomialSpec struct {
	Nodes int
	Prob  float64
}

func (s RandomBinomialSpec) Family() Family { return FamilyRandomBinomial }
func (s RandomBinomialSpec) Name() string {
	return fmt.Sprintf("B_%d_%s", s.Nodes, strconv.FormatFloat(s.Prob, 'g', -1, 64))
}
func (s RandomBinomialSpec) Constructor() Constructor { return RandomBinomial(s.Nodes, s.Prob) }

// Validate checks n and p without sampling. A valid spec can still fail to
// build when every node ends up isolated.
func (s RandomBinomialSpec) Validate() error { return validateBinomial(s.Nodes, s.Prob) }

// ExpectedNodes counts nodes with at least one neighbor: n − n(1−p)^(n−1).
func (s RandomBinomialSpec) ExpectedNodes() float64 {
	n := float64(s.Nodes)
	return n - n*math.Pow(1-s.Prob, n-1)
}

func (s RandomBinomialSpec) ExpectedEdges() float64 {
	n := float64(s.Nodes)
	return s.Prob * n * (n - 1) / 2
}

// WheelSpec is W_n with Nodes nodes in total.
type WheelSpec struct{ Nodes int }

func (s WheelSpec) Family() Family           { return FamilyWheel }
func (s WheelSpec) Name() string             { return fmt.Sprintf("W_%d", s.Nodes) }
func (s WheelSpec) Constructor() Constructor { return Wheel(s.Nodes) }
func (s WheelSpec) ExpectedNodes() float64   { return float64(s.Nodes) }
func (s WheelSpec) ExpectedEdges() float64   { return float64(2 * (s.Nodes - 1)) }
