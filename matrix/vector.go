// SPDX-License-Identifier: MIT

// Package matrix: vector helpers shared by the iterative solvers.
// Thin validated wrappers over gonum/floats; every helper returns a fresh
// slice and never aliases its inputs.
package matrix

import (
	"gonum.org/v1/gonum/floats"
)

const (
	opDot      = "Dot"
	opResidual = "Residual"
)

// Dot returns xᵀy. Lengths must match.
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return floats.Dot(x, y), nil
}

// Norm2 returns the Euclidean norm of x. An empty vector has norm 0.
func Norm2(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, 2)
}

// Residual returns r = b - A x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A not square-compatible with x or b).
//
// Complexity: O(r*c).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	r := make([]float64, len(b))
	floats.SubTo(r, b, ax)

	return r, nil
}

// ResidualNorm returns ‖b - A x‖₂.
func ResidualNorm(a Matrix, x, b []float64) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}

	return Norm2(r), nil
}

// CloneVec returns a copy of x (nil stays nil).
func CloneVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
