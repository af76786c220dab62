// SPDX-License-Identifier: MIT

package qr

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
)

// ClassicalGramSchmidt computes a thin QR by projecting each ORIGINAL column
// of A onto the basis built so far. Numerically weaker than the modified
// variant when columns are close to dependent.
type ClassicalGramSchmidt struct{}

// ModifiedGramSchmidt computes a thin QR by projecting the RUNNING,
// already-orthogonalized vector, which keeps the basis closer to orthogonal
// in floating point.
type ModifiedGramSchmidt struct{}

// Factorize returns Q (n×m, orthonormal columns) and R (m×m upper-triangular).
func (ClassicalGramSchmidt) Factorize(a matrix.Matrix) (*Factorization, error) {
	return gramSchmidt(a, false, opClassicalGS)
}

// Factorize returns Q (n×m, orthonormal columns) and R (m×m upper-triangular).
func (ModifiedGramSchmidt) Factorize(a matrix.Matrix) (*Factorization, error) {
	return gramSchmidt(a, true, opModifiedGS)
}

// gramSchmidt is the shared column loop.
//
//	y = a_j
//	for i < j: R[i,j] = q_iᵀ·(modified ? y : a_j); y -= R[i,j]·q_i
//	R[j,j] = ‖y‖; q_j = y / R[j,j]
//
// A zero residual y leaves q_j = 0 and R[j,j] = 0 (dependent column).
func gramSchmidt(a matrix.Matrix, modified bool, tag string) (*Factorization, error) {
	w, err := tallCopy(a, tag)
	if err != nil {
		return nil, err
	}
	n, m := w.Rows(), w.Cols()

	// columns as contiguous slices so the floats kernels apply directly
	cols := make([][]float64, m)
	qs := make([][]float64, m)
	for j := 0; j < m; j++ {
		cols[j], _ = w.Col(j)
		qs[j] = make([]float64, n)
	}

	R, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, qrErrorf(tag, err)
	}
	rRaw := R.RawMatrix()
	y := make([]float64, n)

	var i, j int
	var rij, norm float64
	for j = 0; j < m; j++ {
		copy(y, cols[j])
		for i = 0; i < j; i++ {
			if modified {
				rij = floats.Dot(qs[i], y)
			} else {
				rij = floats.Dot(qs[i], cols[j])
			}
			rRaw.Data[i*rRaw.Stride+j] = rij
			floats.AddScaled(y, -rij, qs[i])
		}
		norm = floats.Norm(y, 2)
		rRaw.Data[j*rRaw.Stride+j] = norm
		if norm != 0 {
			floats.ScaleTo(qs[j], 1/norm, y)
		}
	}

	Q, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, qrErrorf(tag, err)
	}
	qRaw := Q.RawMatrix()
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			qRaw.Data[i*qRaw.Stride+j] = qs[j][i]
		}
	}

	return &Factorization{Q: Q, R: R}, nil
}
