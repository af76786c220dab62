// SPDX-License-Identifier: MIT

package qr

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// LeastSquares returns x minimizing ‖A·x - b‖₂ for an n×m A (n ≥ m) together
// with the residual norm at x.
// MAIN DESCRIPTION:
//   - Factorize A with f (nil → Householder{}), form c = Qᵀb and back-substitute
//     the leading m×m block of R against c[:m].
//
// Behavior highlights:
//   - With a full Householder Q the residual is ‖c[m:]‖ and needs no extra product.
//   - With a thin Gram-Schmidt Q the residual is computed as ‖b - A·x‖.
//
// Errors:
//   - Anything f returns, matrix.ErrDimensionMismatch (len(b) ≠ n),
//     matrix.ErrSingular (zero R[j,j], i.e. rank-deficient A).
func LeastSquares(a matrix.Matrix, b []float64, f Factorizer) ([]float64, float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, 0, qrErrorf(opLeastSquares, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, 0, qrErrorf(opLeastSquares, err)
	}
	fact, err := Decompose(a, f)
	if err != nil {
		return nil, 0, qrErrorf(opLeastSquares, err)
	}

	return fact.LeastSquares(a, b)
}

// LeastSquares solves min ‖A·x - b‖ with an existing factorization of a.
func (f *Factorization) LeastSquares(a matrix.Matrix, b []float64) ([]float64, float64, error) {
	m := f.R.Cols()
	c, err := matrix.MatTVec(f.Q, b)
	if err != nil {
		return nil, 0, qrErrorf(opLeastSquares, err)
	}
	square, err := f.R.Leading(m, m)
	if err != nil {
		return nil, 0, qrErrorf(opLeastSquares, err)
	}
	x, err := lu.BackSubstitute(square, c[:m])
	if err != nil {
		return nil, 0, qrErrorf(opLeastSquares, fmt.Errorf("rank-deficient R: %w", err))
	}

	if f.Q.Cols() > m {
		return x, floats.Norm(c[m:], 2), nil
	}
	res, err := matrix.ResidualNorm(a, x, b)
	if err != nil {
		return nil, 0, qrErrorf(opLeastSquares, err)
	}

	return x, res, nil
}
