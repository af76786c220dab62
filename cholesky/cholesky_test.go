// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/cholesky"
	"github.com/katalvlaran/linsolve/matrix"
)

func TestFactorize_TextbookExample(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromRows([][]float64{{4, -2, 2}, {-2, 2, -4}, {2, -4, 11}})
	require.NoError(t, err)
	orig := a.Clone()

	R, err := cholesky.Factorize(a)
	require.NoError(t, err)

	want, _ := matrix.FromRows([][]float64{{2, -1, 1}, {0, 1, -3}, {0, 0, 1}})
	ok, err := matrix.AllClose(R, want, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok, "R = %v", R)

	rt, _ := matrix.Transpose(R)
	rtr, _ := matrix.Mul(rt, R)
	ok, _ = matrix.AllClose(rtr, a, 0, 1e-9)
	require.True(t, ok, "RᵀR must reproduce A")

	ok, _ = matrix.AllClose(a, orig, 0, 0)
	require.True(t, ok, "input must not be mutated")
}

func TestFactorize_MatchesGonum(t *testing.T) {
	t.Parallel()

	data := []float64{
		6, 2, 1, 0,
		2, 5, 2, 1,
		1, 2, 4, 1,
		0, 1, 1, 3,
	}
	a, _ := matrix.FromRows([][]float64{data[0:4], data[4:8], data[8:12], data[12:16]})
	R, err := cholesky.Factorize(a)
	require.NoError(t, err)

	var chol mat.Cholesky
	require.True(t, chol.Factorize(mat.NewSymDense(4, data)))
	var u mat.TriDense
	chol.UTo(&u)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := R.At(i, j)
			require.InDelta(t, u.At(i, j), v, 1e-12, fmt.Sprintf("R[%d,%d]", i, j))
		}
	}

	x, err := cholesky.Solve(R, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	res, err := matrix.ResidualNorm(a, x, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Less(t, res, 1e-12)
}

func TestFactorize_Errors(t *testing.T) {
	t.Parallel()

	asym, _ := matrix.FromRows([][]float64{{4, 1}, {0, 4}})
	_, err := cholesky.Factorize(asym)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	indef, _ := matrix.FromRows([][]float64{{1, 2}, {2, 1}})
	_, err = cholesky.Factorize(indef)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)

	negDiag, _ := matrix.FromRows([][]float64{{-1, 0}, {0, 1}})
	_, err = cholesky.Factorize(negDiag)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)

	_, err = cholesky.Factorize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	_, err = cholesky.Factorize(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	loose, _ := matrix.FromRows([][]float64{{4, 1 + 1e-6}, {1, 4}})
	_, err = cholesky.Factorize(loose, cholesky.WithSymmetryTolerance(1e-5))
	require.NoError(t, err)

	require.Panics(t, func() { cholesky.WithSymmetryTolerance(-1) })
}
