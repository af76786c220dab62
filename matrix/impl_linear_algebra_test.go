// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{11, 22}, {33, 44}}), sum, 0)

	diff, err := matrix.Sub(b, hide{a})
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{9, 18}, {27, 36}}), diff, 0)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_FastPathMatchesFallback compares the BLAS path, the interface
// fallback and gonum/mat on the same operands.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	rowsA := [][]float64{{1, 2, 3}, {4, 5, 6}}
	rowsB := [][]float64{{7, 8}, {9, 10}, {11, 12}}
	a, b := MustRows(t, rowsA), MustRows(t, rowsB)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	requireClose(t, fast, slow, 1e-12)

	var want mat.Dense
	want.Mul(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}), mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12}))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, fast, i, j), 1e-12)
		}
	}

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScale(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := MustRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireClose(t, want, at, 0)

	at2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	requireClose(t, want, at2, 0)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}), s, 0)

	s2, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	requireClose(t, s, s2, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVecAndMatTVec(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-2, -2}, y, 1e-15)

	y2, err := matrix.MatVec(hide{a}, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, y, y2)

	z, err := matrix.MatTVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{5, 7, 9}, z, 1e-15)

	z2, err := matrix.MatTVec(hide{a}, []float64{1, 1})
	require.NoError(t, err)
	require.InDeltaSlice(t, z, z2, 1e-15)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatTVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVectorHelpers(t *testing.T) {
	t.Parallel()

	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.InDelta(t, 5.0, matrix.Norm2([]float64{3, 4}), 1e-15)
	require.Zero(t, matrix.Norm2(nil))

	a := MustRows(t, [][]float64{{2, 0}, {0, 4}})
	r, err := matrix.Residual(a, []float64{1, 1}, []float64{3, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{1, -1}, r)

	rn, err := matrix.ResidualNorm(a, []float64{1, 1}, []float64{2, 4})
	require.NoError(t, err)
	require.Zero(t, rn)

	_, err = matrix.Residual(a, []float64{1, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	src := []float64{1, 2}
	cp := matrix.CloneVec(src)
	cp[0] = 5
	require.Equal(t, 1.0, src[0])
	require.Nil(t, matrix.CloneVec(nil))
}
