// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Solve returns x with A·x = b using a previously computed factorization.
// It forward-substitutes L·c = P·b and back-substitutes U·x = c.
//
// Errors: matrix.ErrNilMatrix (nil f), matrix.ErrDimensionMismatch (len(b) ≠ n).
func Solve(f *Factorization, b []float64) ([]float64, error) {
	if f == nil {
		return nil, luErrorf(opSolve, matrix.ErrNilMatrix)
	}

	return f.Solve(b)
}

// Solve is the method form of the package-level Solve.
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.Size()); err != nil {
		return nil, luErrorf(opSolve, err)
	}
	pb, err := f.P.Apply(b)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	c, err := ForwardSubstitute(f.L, pb)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}
	x, err := BackSubstitute(f.U, c)
	if err != nil {
		return nil, luErrorf(opSolve, err)
	}

	return x, nil
}

// SolveMany solves A·X = B column by column and returns X (n×k).
func (f *Factorization) SolveMany(b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, luErrorf(opSolveMany, err)
	}
	n, k := f.Size(), b.Cols()
	if b.Rows() != n {
		return nil, luErrorf(opSolveMany, matrix.ErrDimensionMismatch)
	}
	bd, err := denseView(b)
	if err != nil {
		return nil, luErrorf(opSolveMany, err)
	}
	X, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, luErrorf(opSolveMany, err)
	}
	xRaw := X.RawMatrix()

	var col, x []float64
	for j := 0; j < k; j++ {
		col, _ = bd.Col(j)
		x, err = f.Solve(col)
		if err != nil {
			return nil, luErrorf(opSolveMany, fmt.Errorf("column %d: %w", j, err))
		}
		for i := 0; i < n; i++ {
			xRaw.Data[i*xRaw.Stride+j] = x[i]
		}
	}

	return X, nil
}

// Det returns det(A) = sign(P) · Π U[i,i].
func (f *Factorization) Det() float64 {
	raw := f.U.RawMatrix()
	det := f.P.Sign()
	for i := 0; i < raw.Rows; i++ {
		det *= raw.Data[i*raw.Stride+i]
	}

	return det
}

// Reconstruct returns Pᵀ·L·U, which equals the original A up to rounding.
// Intended for diagnostics and tests.
func (f *Factorization) Reconstruct() (*matrix.Dense, error) {
	lu, err := matrix.Mul(f.L, f.U)
	if err != nil {
		return nil, err
	}
	src := lu.(*matrix.Dense).RawMatrix()
	out, err := matrix.NewDense(src.Rows, src.Cols)
	if err != nil {
		return nil, err
	}
	dst := out.RawMatrix()
	// row i of L·U is row p[i] of A
	for i, pi := range f.P {
		copy(dst.Data[pi*dst.Stride:(pi+1)*dst.Stride], src.Data[i*src.Stride:(i+1)*src.Stride])
	}

	return out, nil
}

// Inverse returns A⁻¹ by solving A·X = I on a pivoted factorization.
//
// Errors: everything Factorize returns (ErrSingular in particular).
// Complexity: O(n³).
func Inverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}
	I, err := matrix.NewIdentity(f.Size())
	if err != nil {
		return nil, luErrorf(opInverse, err)
	}

	return f.SolveMany(I)
}
