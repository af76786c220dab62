// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// denseView returns m itself when it is a *Dense, otherwise a private copy.
func denseView(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok && d != nil {
		return d, nil
	}

	return matrix.DenseCopyOf(m)
}

// ForwardSubstitute solves L·c = b top-to-bottom for a unit lower-triangular L.
// The diagonal of l is assumed to be 1 and is never read; entries above the
// diagonal are ignored.
//
//	c[0] = b[0]
//	c[i] = b[i] - Σ_{j<i} L[i,j]·c[j]
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func ForwardSubstitute(l matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(l, b); err != nil {
		return nil, luErrorf(opForward, err)
	}
	d, err := denseView(l)
	if err != nil {
		return nil, luErrorf(opForward, err)
	}
	raw := d.RawMatrix()
	n := raw.Rows
	c := make([]float64, n)

	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = matrix.ZeroSum
		for j = 0; j < i; j++ {
			sum += raw.Data[i*raw.Stride+j] * c[j]
		}
		c[i] = b[i] - sum
	}

	return c, nil
}

// LowerSolve solves L·y = b for a lower-triangular L with a general
// (non-unit) diagonal. Used for the Rᵀ step of a Cholesky solve.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrSingular (zero diagonal entry).
func LowerSolve(l matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(l, b); err != nil {
		return nil, luErrorf(opForward, err)
	}
	d, err := denseView(l)
	if err != nil {
		return nil, luErrorf(opForward, err)
	}
	raw := d.RawMatrix()
	n := raw.Rows
	y := make([]float64, n)

	var i, j int
	var sum, diag float64
	for i = 0; i < n; i++ {
		sum = matrix.ZeroSum
		for j = 0; j < i; j++ {
			sum += raw.Data[i*raw.Stride+j] * y[j]
		}
		diag = raw.Data[i*raw.Stride+i]
		if diag == 0 {
			return nil, luErrorf(opForward, fmt.Errorf("diagonal %d: %w", i, matrix.ErrSingular))
		}
		y[i] = (b[i] - sum) / diag
	}

	return y, nil
}

// BackSubstitute solves U·x = c bottom-to-top for an upper-triangular U.
// Entries below the diagonal are ignored.
//
//	x[n-1] = c[n-1] / U[n-1,n-1]
//	x[i]   = (c[i] - Σ_{j>i} U[i,j]·x[j]) / U[i,i]
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrSingular (zero diagonal entry).
// Complexity: O(n²).
func BackSubstitute(u matrix.Matrix, c []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(u, c); err != nil {
		return nil, luErrorf(opBack, err)
	}
	d, err := denseView(u)
	if err != nil {
		return nil, luErrorf(opBack, err)
	}
	raw := d.RawMatrix()
	n := raw.Rows
	x := make([]float64, n)

	var i, j int
	var sum, diag float64
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j = n - 1; j > i; j-- {
			sum += raw.Data[i*raw.Stride+j] * x[j]
		}
		diag = raw.Data[i*raw.Stride+i]
		if diag == 0 {
			return nil, luErrorf(opBack, fmt.Errorf("diagonal %d: %w", i, matrix.ErrSingular))
		}
		x[i] = (c[i] - sum) / diag
	}

	return x, nil
}
