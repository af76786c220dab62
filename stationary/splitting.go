// SPDX-License-Identifier: MIT

package stationary

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Splitting is A = D - L - U.
//   - D: the diagonal of A.
//   - L: the strictly-lower part of A, negated.
//   - U: the strictly-upper part of A, negated.
//
// Built once per solve and never modified afterwards.
type Splitting struct {
	D []float64
	L *matrix.Dense
	U *matrix.Dense

	a *matrix.Dense // private copy of A for residual evaluation
}

// Size returns n.
func (s *Splitting) Size() int { return len(s.D) }

// NewSplitting derives (D, L, U) from a square A.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
//     matrix.ErrSingular (a zero diagonal entry makes D⁻¹ undefined).
func NewSplitting(a matrix.Matrix) (*Splitting, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, stationaryErrorf(opSplitting, err)
	}
	w, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, stationaryErrorf(opSplitting, err)
	}
	if err = matrix.ValidateFiniteVec(w.RawMatrix().Data); err != nil {
		return nil, stationaryErrorf(opSplitting, err)
	}
	d, err := matrix.Diagonal(w)
	if err != nil {
		return nil, stationaryErrorf(opSplitting, err)
	}
	for i, v := range d {
		if v == 0 {
			return nil, stationaryErrorf(opSplitting, fmt.Errorf("diagonal %d: %w", i, matrix.ErrSingular))
		}
	}

	L, err := matrix.Tril(w, -1)
	if err != nil {
		return nil, stationaryErrorf(opSplitting, err)
	}
	U, err := matrix.Triu(w, 1)
	if err != nil {
		return nil, stationaryErrorf(opSplitting, err)
	}
	negate := func(_, _ int, v float64) float64 { return -v }
	_ = L.Apply(negate)
	_ = U.Apply(negate)

	return &Splitting{D: d, L: L, U: U, a: w}, nil
}

// OffDiagonal returns Σ_{j<i} L[i,j]·x[j] + Σ_{j>i} U[i,j]·x[j], summed in
// ascending j. Every method funnels through it so that SOR(1) and
// Gauss-Seidel see identical rounding.
func (s *Splitting) OffDiagonal(i int, x []float64) float64 {
	n := len(s.D)
	lRow := s.L.RawMatrix().Data[i*n : (i+1)*n]
	uRow := s.U.RawMatrix().Data[i*n : (i+1)*n]
	var sum float64
	for j := 0; j < i; j++ {
		sum += lRow[j] * x[j]
	}
	for j := i + 1; j < n; j++ {
		sum += uRow[j] * x[j]
	}

	return sum
}
