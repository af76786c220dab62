// SPDX-License-Identifier: MIT
// Package lu - PA = LU factorization with partial pivoting.
//
// Purpose:
//   - Factorize a square matrix once and reuse (P, L, U) for many right-hand sides.
//   - Never touch the caller's matrix: every routine works on a private copy.
//
// Complexity quicksheet:
//   - Factorize / Doolittle: O(n³) time, O(n²) space.
//   - Solve: O(n²) per right-hand side.

package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Factorization is the result of Factorize: P·A = L·U for the original A.
//   - P: row ordering (see Permutation).
//   - L: unit lower-triangular n×n.
//   - U: upper-triangular n×n with |U[i,i]| ≥ the pivot tolerance.
//
// A Factorization is immutable after construction and safe to share
// between goroutines for read-only solves.
type Factorization struct {
	P Permutation
	L *matrix.Dense
	U *matrix.Dense
}

// Size returns n.
func (f *Factorization) Size() int { return len(f.P) }

// Factorize computes P·A = L·U with partial pivoting.
// MAIN DESCRIPTION:
//   - For column j = 0..n-2 pick the row with the largest |A[i,j]| (i ≥ j),
//     swap it into place, then eliminate below the pivot while storing the
//     multipliers in the strict lower part of the working copy.
//
// Implementation:
//   - Stage 1: validate (nil → square → finite) and copy A into a private Dense.
//   - Stage 2: pivot search via argMaxAbs on the strided column; whole-row swap
//     so multipliers recorded so far travel with their rows.
//   - Stage 3: |pivot| < tol → ErrSingular; else eliminate rows j+1..n-1.
//   - Stage 4: the last diagonal entry is checked against tol as well.
//   - Stage 5: split the working copy into unit-lower L and upper U.
//
// Behavior highlights:
//   - Ties in the pivot search keep the topmost row (deterministic).
//   - The input matrix is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
//     matrix.ErrSingular (pivot magnitude below tolerance).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a matrix.Matrix, opts ...Option) (*Factorization, error) {
	o := gatherOptions(opts...)
	w, err := workingCopy(a, opFactorize)
	if err != nil {
		return nil, err
	}
	n := w.Rows()
	raw := w.RawMatrix()
	d, s := raw.Data, raw.Stride
	perm := Identity(n)

	var (
		i, j, k int
		pivot   float64
		mult    float64
	)
	for j = 0; j < n-1; j++ {
		off, _ := argMaxAbs(d, j*s+j, n-j, s)
		if off != 0 {
			_ = w.SwapRows(j, j+off)
			perm[j], perm[j+off] = perm[j+off], perm[j]
		}
		pivot = d[j*s+j]
		if abs(pivot) < o.pivotTol {
			return nil, luErrorf(opFactorize, fmt.Errorf("pivot %d = %g: %w", j, pivot, matrix.ErrSingular))
		}
		for i = j + 1; i < n; i++ {
			mult = d[i*s+j] / pivot
			d[i*s+j] = mult
			if mult == 0 {
				continue
			}
			for k = j + 1; k < n; k++ {
				d[i*s+k] -= mult * d[j*s+k]
			}
		}
	}
	if last := d[(n-1)*s+n-1]; abs(last) < o.pivotTol {
		return nil, luErrorf(opFactorize, fmt.Errorf("pivot %d = %g: %w", n-1, last, matrix.ErrSingular))
	}

	L, U, err := split(w)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	return &Factorization{P: perm, L: L, U: U}, nil
}

// Doolittle computes A = L·U without pivoting (P is the identity).
// It fails with ErrSingular as soon as a diagonal pivot falls below the
// tolerance, even when a row exchange would have rescued the elimination.
// Prefer Factorize unless A is known to be diagonally dominant or SPD.
func Doolittle(a matrix.Matrix, opts ...Option) (*Factorization, error) {
	o := gatherOptions(opts...)
	w, err := workingCopy(a, opDoolittle)
	if err != nil {
		return nil, err
	}
	n := w.Rows()
	raw := w.RawMatrix()
	d, s := raw.Data, raw.Stride

	var i, j, k int
	var pivot, mult float64
	for j = 0; j < n; j++ {
		pivot = d[j*s+j]
		if abs(pivot) < o.pivotTol {
			return nil, luErrorf(opDoolittle, fmt.Errorf("pivot %d = %g: %w", j, pivot, matrix.ErrSingular))
		}
		for i = j + 1; i < n; i++ {
			mult = d[i*s+j] / pivot
			d[i*s+j] = mult
			for k = j + 1; k < n; k++ {
				d[i*s+k] -= mult * d[j*s+k]
			}
		}
	}

	L, U, err := split(w)
	if err != nil {
		return nil, luErrorf(opDoolittle, err)
	}

	return &Factorization{P: Identity(n), L: L, U: U}, nil
}

// workingCopy validates a and returns a private Dense copy.
func workingCopy(a matrix.Matrix, tag string) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, luErrorf(tag, err)
	}
	w, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, luErrorf(tag, err)
	}
	if err = matrix.ValidateFiniteVec(w.RawMatrix().Data); err != nil {
		return nil, luErrorf(tag, err)
	}

	return w, nil
}

// split separates the packed elimination result: strict lower part → L
// (with an implicit unit diagonal), upper part → U (strict lower zeroed).
func split(w *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	n := w.Rows()
	L, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}
	U, err := matrix.Triu(w, 0)
	if err != nil {
		return nil, nil, err
	}
	src, dst := w.RawMatrix().Data, L.RawMatrix().Data
	for i := 1; i < n; i++ {
		copy(dst[i*n:i*n+i], src[i*n:i*n+i])
	}

	return L, U, nil
}
