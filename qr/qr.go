// SPDX-License-Identifier: MIT
// Package qr - QR factorization strategies behind one contract.
//
// Purpose:
//   - Expose Householder reflectors (default) and the classical/modified
//     Gram-Schmidt alternates as interchangeable Factorizer values.
//   - Never mutate the input; every strategy works on a private copy.
//
// Complexity quicksheet:
//   - Householder: O(n·m²) for n×m, plus O(n²·m) to accumulate the full Q.
//   - Gram-Schmidt (both): O(n·m²).

package qr

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Factorization holds A = Q·R.
//   - Householder: Q is n×n orthogonal, R is n×m upper-triangular.
//   - Gram-Schmidt: Q is n×m with orthonormal columns, R is m×m upper-triangular.
//
// A (near) zero R[j,j] signals linearly dependent columns; no error is raised
// for it. Use Rank to detect it.
type Factorization struct {
	Q *matrix.Dense
	R *matrix.Dense
}

// Factorizer is a QR strategy.
type Factorizer interface {
	Factorize(a matrix.Matrix) (*Factorization, error)
}

// Decompose runs f on a; a nil f selects Householder{}.
func Decompose(a matrix.Matrix, f Factorizer) (*Factorization, error) {
	if f == nil {
		f = Householder{}
	}

	return f.Factorize(a)
}

// Rank counts the diagonal entries of R whose magnitude exceeds tol.
func (f *Factorization) Rank(tol float64) int {
	raw := f.R.RawMatrix()
	k := raw.Rows
	if raw.Cols < k {
		k = raw.Cols
	}
	rank := 0
	for j := 0; j < k; j++ {
		if math.Abs(raw.Data[j*raw.Stride+j]) > tol {
			rank++
		}
	}

	return rank
}

// tallCopy validates a (non-nil, rows ≥ cols, finite) and returns a private copy.
func tallCopy(a matrix.Matrix, tag string) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, qrErrorf(tag, err)
	}
	if a.Rows() < a.Cols() {
		return nil, qrErrorf(tag, matrix.ErrDimensionMismatch)
	}
	w, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, qrErrorf(tag, err)
	}
	if err = matrix.ValidateFiniteVec(w.RawMatrix().Data); err != nil {
		return nil, qrErrorf(tag, err)
	}

	return w, nil
}
