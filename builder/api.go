// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// api.go - the Constructor type and the BuildGraph orchestrator.
//
// Design contract:
//   - BuildGraph creates a LabeledGraph, resolves cfg, runs cons in order.
//   - Constructors validate early and return sentinel errors; no panics.
//   - Same inputs, options, and seed ⇒ identical label and edge order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Constructor adds a family's nodes and edges to lg using the resolved
// builderConfig.
type Constructor func(lg *core.LabeledGraph, cfg builderConfig) error

// BuildGraph resolves bopts and applies every constructor to a fresh
// LabeledGraph. Constructor errors are wrapped as "BuildGraph: %w".
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.LabeledGraph, error) {
	lg := core.NewLabeledGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(lg, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return lg, nil
}

// BuildCanonical runs BuildGraph and canonicalizes the result to dense ids.
// It returns the graph and the label of each id.
func BuildCanonical(bopts []BuilderOption, cons ...Constructor) (*core.Graph, []string, error) {
	lg, err := BuildGraph(bopts, cons...)
	if err != nil {
		return nil, nil, err
	}

	return lg.Canonical()
}
