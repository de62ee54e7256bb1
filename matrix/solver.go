// SPDX-License-Identifier: MIT
// File: solver.go
// Role: symmetric eigen solvers.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver computes eigenvalues and eigenvectors of a real symmetric matrix.
// Column k of the returned vectors pairs with eigenvalue k.
type Solver interface {
	EigenSym(m *Dense) ([]float64, *Dense, error)
}

const opEigen = "EigenSym"

// DefaultSymmetryTol is the tolerance used to validate solver inputs.
const DefaultSymmetryTol = 1e-9

// Gonum solves with gonum's LAPACK-backed symmetric eigendecomposition.
type Gonum struct{}

var _ Solver = Gonum{}

// EigenSym implements Solver.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (tolerance DefaultSymmetryTol).
//   - ErrMatrixEigenFailed if factorization does not succeed.
func (Gonum) EigenSym(m *Dense) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, DefaultSymmetryTol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.r
	sym := mat.NewSymDense(n, append([]float64(nil), m.data...))
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}
	values := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	vecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vecs.data[i*n+j] = ev.At(i, j)
		}
	}

	return values, vecs, nil
}

// Jacobi solves with classical max-pivot Jacobi rotations.
//
// Tol is the convergence threshold on the largest off-diagonal magnitude.
// MaxIter caps the number of rotations; zero selects 50·n².
type Jacobi struct {
	Tol     float64
	MaxIter int
}

var _ Solver = Jacobi{}

// DefaultJacobiTol is used when Jacobi.Tol is zero.
const DefaultJacobiTol = 1e-10

// EigenSym implements Solver.
//
// Implementation:
//   - Stage 1: validate symmetric square input.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a Jacobi rotation, accumulating Q.
//   - Stage 3: eigenvalues are the diagonal of the rotated A; Q's columns
//     are the eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
//   - ErrMatrixEigenFailed when max off-diagonal ≥ Tol after MaxIter rotations.
//
// Complexity: O(MaxIter · n) time after an O(n²) pivot scan per rotation.
func (s Jacobi) EigenSym(m *Dense) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, DefaultSymmetryTol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol := s.Tol
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	n := m.r
	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = 50 * n * n
	}
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		p, r               int
		maxOff, off        float64
		app, aqq, apq      float64
		theta, t, c, sn    float64
		aip, aiq, qip, qiq float64
		newIP, newIQ       float64
	)
	converged := false
	for iter := 0; iter <= maxIter; iter++ {
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}
		app = a.data[p*n+p]
		aqq = a.data[r*n+r]
		apq = a.data[p*n+r]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		sn = t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+r]
			newIP = c*aip - sn*aiq
			newIQ = sn*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*sn*apq + sn*sn*aqq
		a.data[r*n+r] = sn*sn*app + 2*c*sn*apq + c*c*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+r]
			q.data[i*n+p] = c*qip - sn*qiq
			q.data[i*n+r] = sn*qip + c*qiq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("max off-diagonal %g ≥ %g: %w", maxOff, tol, ErrMatrixEigenFailed))
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = a.data[i*n+i]
	}

	return values, q, nil
}

// NewSolver maps a solver name ("gonum", "jacobi") to a Solver.
// tol and maxIter only affect Jacobi.
func NewSolver(name string, tol float64, maxIter int) (Solver, error) {
	switch name {
	case "", "gonum":
		return Gonum{}, nil
	case "jacobi":
		return Jacobi{Tol: tol, MaxIter: maxIter}, nil
	}

	return nil, fmt.Errorf("NewSolver(%q): %w", name, ErrUnknownSolver)
}
