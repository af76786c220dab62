// SPDX-License-Identifier: MIT

// Package cholesky factorizes a symmetric positive-definite matrix as A = RᵀR
// with R upper-triangular, and solves systems with the factor.
package cholesky

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// ErrNotPositiveDefinite is returned when a pivot A[i,i] (after the updates of
// the previous steps) is not strictly positive.
var ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")

const (
	opFactorize = "cholesky.Factorize"
	opSolve     = "cholesky.Solve"
)

const panicSymmetryTolerance = "cholesky: WithSymmetryTolerance: tol must be finite, non-negative"

// Option configures Factorize.
type Option func(*options)

type options struct {
	symTol float64
}

// WithSymmetryTolerance sets the |A[i,j] - A[j,i]| bound accepted as symmetric.
// Defaults to matrix.DefaultEpsilon. Panics on negative, NaN or ±Inf.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymmetryTolerance)
	}

	return func(o *options) { o.symTol = tol }
}

func choleskyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factorize returns the upper-triangular R with RᵀR = A.
// MAIN DESCRIPTION:
//   - Row i of R: R[i,i] = √A[i,i], R[i,i+1:] = A[i,i+1:] / R[i,i]; then the
//     trailing block is updated A[i+1:,i+1:] -= uᵀu.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAsymmetry,
//     ErrNotPositiveDefinite (non-positive pivot).
//
// Complexity:
//   - Time O(n³/3), Space O(n²). The input is never mutated.
func Factorize(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := options{symTol: matrix.DefaultEpsilon}
	for _, set := range opts {
		set(&o)
	}
	if err := matrix.ValidateSymmetric(a, o.symTol); err != nil {
		return nil, choleskyErrorf(opFactorize, err)
	}
	w, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, choleskyErrorf(opFactorize, err)
	}
	n := w.Rows()
	R, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, choleskyErrorf(opFactorize, err)
	}
	wd := w.RawMatrix().Data
	rd := R.RawMatrix().Data

	var i, j, k int
	var rii float64
	for i = 0; i < n; i++ {
		if !(wd[i*n+i] > 0) {
			return nil, choleskyErrorf(opFactorize, fmt.Errorf("pivot %d = %g: %w", i, wd[i*n+i], ErrNotPositiveDefinite))
		}
		rii = math.Sqrt(wd[i*n+i])
		rd[i*n+i] = rii
		for j = i + 1; j < n; j++ {
			rd[i*n+j] = wd[i*n+j] / rii
		}
		for j = i + 1; j < n; j++ {
			for k = i + 1; k < n; k++ {
				wd[j*n+k] -= rd[i*n+j] * rd[i*n+k]
			}
		}
	}

	return R, nil
}

// Solve returns x with RᵀR·x = b: Rᵀy = b forward, then R·x = y backward.
func Solve(r matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(r, b); err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}
	rt, err := matrix.Transpose(r)
	if err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}
	y, err := lu.LowerSolve(rt, b)
	if err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}
	x, err := lu.BackSubstitute(r, y)
	if err != nil {
		return nil, choleskyErrorf(opSolve, err)
	}

	return x, nil
}
