// SPDX-License-Identifier: MIT

package qr

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
)

// Householder computes A = Q·R with reflectors H_j = I - 2·v·vᵀ/(vᵀv).
type Householder struct{}

// Factorize computes a full QR factorization of an n×m matrix (n ≥ m).
// MAIN DESCRIPTION:
//   - For every column j < min(n-1, m), build the reflector mapping the
//     trailing subcolumn x = R[j:, j] onto w = (∓‖x‖, 0, ..., 0) and apply it
//     to the working copy (forming R) and, from the right, to Q.
//
// Implementation:
//   - Stage 1: validate and copy A; Q = I_n.
//   - Stage 2: w₀ takes the sign opposite to x₀ (x₀ == 0 → +‖x‖), so v = w - x
//     never suffers cancellation in its leading entry.
//   - Stage 3: apply H_j to R columns j..m-1 and to Q rows 0..n-1.
//   - Stage 4: store w₀ on the diagonal and exact zeros below it.
//
// Behavior highlights:
//   - An all-zero subcolumn is skipped (H_j = I); R[j,j] stays 0.
//   - Q = H₀·H₁·…, so Q is symmetric only when a single reflector was applied.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (n < m), matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n·m² + n²·m), Space O(n² + n·m).
func (Householder) Factorize(a matrix.Matrix) (*Factorization, error) {
	R, err := tallCopy(a, opHouseholder)
	if err != nil {
		return nil, err
	}
	n, m := R.Rows(), R.Cols()
	Q, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, qrErrorf(opHouseholder, err)
	}
	rRaw, qRaw := R.RawMatrix(), Q.RawMatrix()
	rd, rs := rRaw.Data, rRaw.Stride
	qd, qs := qRaw.Data, qRaw.Stride

	steps := m
	if n-1 < steps {
		steps = n - 1
	}
	x := make([]float64, n)
	v := make([]float64, n)

	var (
		i, c, j, l      int
		norm, w0, vv, s float64
	)
	for j = 0; j < steps; j++ {
		l = n - j
		for i = 0; i < l; i++ {
			x[i] = rd[(j+i)*rs+j]
		}
		norm = floats.Norm(x[:l], 2)
		if norm == 0 {
			continue
		}
		w0 = norm
		if x[0] > 0 {
			w0 = -norm
		}
		// v = w - x
		floats.ScaleTo(v[:l], -1, x[:l])
		v[0] += w0
		vv = floats.Dot(v[:l], v[:l])

		// R ← H_j·R on columns j+1..m-1; column j is set exactly below.
		for c = j + 1; c < m; c++ {
			s = 0
			for i = 0; i < l; i++ {
				s += v[i] * rd[(j+i)*rs+c]
			}
			s = 2 * s / vv
			for i = 0; i < l; i++ {
				rd[(j+i)*rs+c] -= s * v[i]
			}
		}
		rd[j*rs+j] = w0
		for i = 1; i < l; i++ {
			rd[(j+i)*rs+j] = 0
		}

		// Q ← Q·H_j touches columns j..n-1 of every row.
		for i = 0; i < n; i++ {
			row := qd[i*qs+j : i*qs+n]
			s = 2 * floats.Dot(row, v[:l]) / vv
			floats.AddScaled(row, -s, v[:l])
		}
	}

	return &Factorization{Q: Q, R: R}, nil
}
