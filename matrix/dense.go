// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Set rejects NaN/Inf.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Returns ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns m[i,j] or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns m[i,j] = v. Returns ErrOutOfRange or ErrNaNInf.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// RawData exposes the row-major buffer. Mutations are visible in m.
func (m *Dense) RawData() []float64 { return m.data }

// Column returns a copy of column j. Returns ErrOutOfRange for bad j.
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.Column(%d): %w", j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns a copy of the matrix as a slice of rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ValidateSymmetric checks m is square and |m[i,j] − m[j,i]| ≤ tol.
func ValidateSymmetric(m *Dense, tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}
	tol = math.Abs(tol)
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > tol {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
