// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context using %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, leaves, d, n1/n2)
// is smaller than the minimum for the requested family.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not produce a usable
// graph, e.g. a random binomial draw left fewer than two connected nodes.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidFamily indicates an unrecognized graph family tag.
var ErrInvalidFamily = errors.New("builder: invalid graph family")

// ErrMissingParam indicates that Resolve was given a record lacking a
// parameter the family requires.
var ErrMissingParam = errors.New("builder: missing family parameter")
