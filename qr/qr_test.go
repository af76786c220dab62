// SPDX-License-Identifier: MIT

package qr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/qr"
)

type hide struct{ matrix.Matrix }

// StrategySuite runs the shared QR contract against one Factorizer.
type StrategySuite struct {
	suite.Suite
	f    qr.Factorizer
	full bool // Q is n×n (Householder) rather than n×m
}

func (s *StrategySuite) rows(rows [][]float64) *matrix.Dense {
	m, err := matrix.FromRows(rows)
	require.NoError(s.T(), err)

	return m
}

// checkInvariants asserts QᵀQ ≈ I, R upper-triangular and Q·R ≈ A.
func (s *StrategySuite) checkInvariants(a matrix.Matrix, f *qr.Factorization) {
	t := s.T()
	n, m := a.Rows(), a.Cols()
	if s.full {
		require.Equal(t, [2]int{n, n}, [2]int{f.Q.Rows(), f.Q.Cols()})
		require.Equal(t, [2]int{n, m}, [2]int{f.R.Rows(), f.R.Cols()})
	} else {
		require.Equal(t, [2]int{n, m}, [2]int{f.Q.Rows(), f.Q.Cols()})
		require.Equal(t, [2]int{m, m}, [2]int{f.R.Rows(), f.R.Cols()})
	}

	qt, err := matrix.Transpose(f.Q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, f.Q)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(f.Q.Cols())
	require.NoError(t, err)
	ok, err := matrix.AllClose(qtq, I, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok, "QᵀQ must be the identity")

	upper, err := matrix.IsUpperTriangular(f.R, 0)
	require.NoError(t, err)
	require.True(t, upper, "R must be upper-triangular")

	prod, err := matrix.Mul(f.Q, f.R)
	require.NoError(t, err)
	ok, err = matrix.AllClose(prod, a, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok, "Q·R must reproduce A")
}

func (s *StrategySuite) TestSquare() {
	a := s.rows([][]float64{{1, -4}, {2, 3}})
	orig := a.Clone()

	f, err := qr.Decompose(a, s.f)
	require.NoError(s.T(), err)
	s.checkInvariants(a, f)

	same, _ := matrix.AllClose(a, orig, 0, 0)
	require.True(s.T(), same, "input must not be mutated")
}

func (s *StrategySuite) TestTall() {
	a := s.rows([][]float64{
		{4, 1, 2},
		{-2, 3, 0},
		{1, 1, 5},
		{0, -2, 1},
		{3, 0, -1},
	})
	f, err := s.f.Factorize(hide{a})
	require.NoError(s.T(), err)
	s.checkInvariants(a, f)
	require.Equal(s.T(), 3, f.Rank(1e-9))
}

func (s *StrategySuite) TestDependentColumnsDoNotFail() {
	a := s.rows([][]float64{{1, 2}, {2, 4}, {3, 6}})
	f, err := s.f.Factorize(a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, f.Rank(1e-9))
	require.InDelta(s.T(), 0, f.R.RawMatrix().Data[1*f.R.Cols()+1], 1e-9)
}

func (s *StrategySuite) TestErrors() {
	_, err := s.f.Factorize(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)

	_, err = s.f.Factorize(s.rows([][]float64{{1, 2, 3}}))
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

func (s *StrategySuite) TestLeastSquaresLineFit() {
	// y = 1 + 2t sampled with symmetric noise
	a := s.rows([][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	b := []float64{1.1, 2.9, 5.1, 6.9}

	x, res, err := qr.LeastSquares(a, b, s.f)
	require.NoError(s.T(), err)

	var want mat.Dense
	require.NoError(s.T(), want.Solve(mat.NewDense(4, 2, a.RawMatrix().Data), mat.NewDense(4, 1, b)))
	require.True(s.T(), floats.EqualApprox(x, []float64{want.At(0, 0), want.At(1, 0)}, 1e-10))

	direct, err := matrix.ResidualNorm(a, x, b)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), direct, res, 1e-10)
}

func TestHouseholderSuite(t *testing.T) {
	suite.Run(t, &StrategySuite{f: qr.Householder{}, full: true})
}

func TestClassicalGramSchmidtSuite(t *testing.T) {
	suite.Run(t, &StrategySuite{f: qr.ClassicalGramSchmidt{}})
}

func TestModifiedGramSchmidtSuite(t *testing.T) {
	suite.Run(t, &StrategySuite{f: qr.ModifiedGramSchmidt{}})
}

func TestHouseholder_SignAvoidsCancellation(t *testing.T) {
	t.Parallel()

	pos, _ := matrix.FromRows([][]float64{{3, 1}, {4, 1}})
	f, err := qr.Decompose(pos, nil)
	require.NoError(t, err)
	require.InDelta(t, -5, f.R.RawMatrix().Data[0], 1e-14, "positive leading entry maps to -‖x‖")

	neg, _ := matrix.FromRows([][]float64{{-3, 1}, {4, 1}})
	f, err = qr.Decompose(neg, qr.Householder{})
	require.NoError(t, err)
	require.InDelta(t, 5, f.R.RawMatrix().Data[0], 1e-14, "negative leading entry maps to +‖x‖")

	// strict lower part is exactly zero
	require.Zero(t, f.R.RawMatrix().Data[2])
}

func TestModifiedBeatsClassicalOnNearDependentColumns(t *testing.T) {
	t.Parallel()

	// Läuchli-style matrix: columns nearly parallel
	eps := 1e-8
	a, _ := matrix.FromRows([][]float64{
		{1, 1, 1},
		{eps, 0, 0},
		{0, eps, 0},
		{0, 0, eps},
	})
	orthErr := func(f *qr.Factorization) float64 {
		qt, _ := matrix.Transpose(f.Q)
		qtq, _ := matrix.Mul(qt, f.Q)
		var worst float64
		qtq.(*matrix.Dense).Do(func(i, j int, v float64) bool {
			if i == j {
				v -= 1
			}
			worst = math.Max(worst, math.Abs(v))
			return true
		})
		return worst
	}

	cgs, err := qr.ClassicalGramSchmidt{}.Factorize(a)
	require.NoError(t, err)
	mgs, err := qr.ModifiedGramSchmidt{}.Factorize(a)
	require.NoError(t, err)
	require.Less(t, orthErr(mgs), orthErr(cgs))
}

func TestLeastSquares_Errors(t *testing.T) {
	t.Parallel()

	a, _ := matrix.FromRows([][]float64{{1, 0}, {0, 1}, {0, 0}})
	_, _, err := qr.LeastSquares(a, []float64{1, 2}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = qr.LeastSquares(nil, []float64{1}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// an all-zero column yields an exactly zero R[1,1]
	dep, _ := matrix.FromRows([][]float64{{1, 0}, {1, 0}, {1, 0}})
	_, _, err = qr.LeastSquares(dep, []float64{1, 2, 3}, qr.ModifiedGramSchmidt{})
	require.ErrorIs(t, err, matrix.ErrSingular)
}
