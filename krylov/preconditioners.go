// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// JacobiPreconditioner returns M = diag(A).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// matrix.ErrSingular (zero diagonal entry).
func JacobiPreconditioner(a matrix.Matrix) (*matrix.Dense, error) {
	d, err := nonZeroDiagonal(a, opJacobiPrecond)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDiag(d)
	if err != nil {
		return nil, krylovErrorf(opJacobiPrecond, err)
	}

	return m, nil
}

// SSORPreconditioner returns M = (D + ω·L)·D⁻¹·(D + ω·U), where D is the
// diagonal of A and L, U are its strict lower and upper triangles.
// ω == 1 gives the symmetric Gauss-Seidel preconditioner. For symmetric A
// the result is symmetric.
//
// Errors: as JacobiPreconditioner.
func SSORPreconditioner(a matrix.Matrix, omega float64) (*matrix.Dense, error) {
	d, err := nonZeroDiagonal(a, opSSORPrecond)
	if err != nil {
		return nil, err
	}
	lower, err := matrix.Tril(a, 0)
	if err != nil {
		return nil, krylovErrorf(opSSORPrecond, err)
	}
	upper, err := matrix.Triu(a, 0)
	if err != nil {
		return nil, krylovErrorf(opSSORPrecond, err)
	}

	// lower ← (D + ωL)·D⁻¹, upper ← D + ωU
	err = lower.Apply(func(i, j int, v float64) float64 {
		if i != j {
			v *= omega
		}
		return v / d[j]
	})
	if err != nil {
		return nil, krylovErrorf(opSSORPrecond, err)
	}
	err = upper.Apply(func(i, j int, v float64) float64 {
		if i != j {
			return omega * v
		}
		return v
	})
	if err != nil {
		return nil, krylovErrorf(opSSORPrecond, err)
	}

	m, err := matrix.Mul(lower, upper)
	if err != nil {
		return nil, krylovErrorf(opSSORPrecond, err)
	}

	return m.(*matrix.Dense), nil
}

func nonZeroDiagonal(a matrix.Matrix, tag string) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, krylovErrorf(tag, err)
	}
	d, err := matrix.Diagonal(a)
	if err != nil {
		return nil, krylovErrorf(tag, err)
	}
	for i, v := range d {
		if v == 0 {
			return nil, krylovErrorf(tag, fmt.Errorf("diagonal %d: %w", i, matrix.ErrSingular))
		}
	}

	return d, nil
}
