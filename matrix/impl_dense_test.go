// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-only policy and its opt-out.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWithOptions(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDenseCopyOf(t *testing.T) {
	t.Parallel()

	src := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	cp, err := matrix.DenseCopyOf(src)
	require.NoError(t, err)
	requireClose(t, src, cp, 0)
	MustSet(t, cp, 0, 0, 9)
	require.Equal(t, 1.0, MustAt(t, src, 0, 0), "copy must not alias the source")

	viaIface, err := matrix.DenseCopyOf(hide{src})
	require.NoError(t, err)
	requireClose(t, src, viaIface, 0)

	_, err = matrix.DenseCopyOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.DenseCopyOf(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRawMatrixSharesStorage(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	raw := m.RawMatrix()

	assert.Equal(t, 2, raw.Rows)
	assert.Equal(t, 3, raw.Cols)
	assert.Equal(t, 3, raw.Stride)
	raw.Data[1*raw.Stride+2] = 42
	assert.Equal(t, 42.0, MustAt(t, m, 1, 2))
}

func TestRowColSwap(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, 5.0, MustAt(t, m, 0, 0))
	require.Equal(t, 1.0, MustAt(t, m, 2, 0))
	require.NoError(t, m.SwapRows(1, 1))

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestInducedAndLeading(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{8}, {2}}), sub, 0)

	lead, err := m.Leading(2, 2)
	require.NoError(t, err)
	requireClose(t, MustRows(t, [][]float64{{1, 2}, {4, 5}}), lead, 0)

	_, err = m.Leading(4, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Induced([]int{5}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDoApply(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	var sum float64
	m.Do(func(_, _ int, v float64) bool { sum += v; return true })
	require.Equal(t, 10.0, sum)

	var visited int
	m.Do(func(_, _ int, _ float64) bool { visited++; return visited < 2 })
	require.Equal(t, 2, visited)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 2 }))
	require.Equal(t, 8.0, MustAt(t, m, 1, 1))

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestString(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
