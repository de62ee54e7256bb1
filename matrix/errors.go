// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels, wrapped with "<op>: %w" context, and
// tests match them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into Build.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates Build was asked for a matrix of a graph with no nodes.
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrNilMatrix indicates that a nil matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that an eigen routine failed to converge.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrUnknownKind indicates an unrecognized matrix kind.
	ErrUnknownKind = errors.New("matrix: unknown matrix kind")

	// ErrUnknownSolver indicates an unrecognized solver name.
	ErrUnknownSolver = errors.New("matrix: unknown solver")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
