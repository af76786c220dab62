// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/qr"
)

// operator is the action v ↦ Op·v driving the Arnoldi process
// (A·v, or M⁻¹·A·v when preconditioned).
type operator func(v []float64) ([]float64, error)

// arnoldi is the Krylov state of one GMRES call. Both buffers are sized for
// the full budget m up front; live counts how many basis vectors are valid.
//
//	basis: (m+1)×n, row j holds qⱼ
//	h:     (m+1)×m upper Hessenberg
type arnoldi struct {
	op    operator
	basis *matrix.Dense
	h     *matrix.Dense
	beta  float64 // ‖r0‖
	tol   float64
	live  int
}

func newArnoldi(op operator, r0 []float64, m int, tol float64) (*arnoldi, error) {
	n := len(r0)
	basis, err := matrix.NewDense(m+1, n)
	if err != nil {
		return nil, krylovErrorf(opArnoldi, err)
	}
	h, err := matrix.NewDense(m+1, m)
	if err != nil {
		return nil, krylovErrorf(opArnoldi, err)
	}
	beta := floats.Norm(r0, 2)
	floats.ScaleTo(basis.RawMatrix().Data[:n], 1/beta, r0)

	return &arnoldi{op: op, basis: basis, h: h, beta: beta, tol: tol, live: 1}, nil
}

// q returns a view of basis vector j.
func (s *arnoldi) q(j int) []float64 {
	n := s.basis.Cols()

	return s.basis.RawMatrix().Data[j*n : (j+1)*n]
}

// step runs Arnoldi iteration k: y = Op·qₖ, modified Gram-Schmidt against
// q0..qₖ into column k of H, then H[k+1,k] = ‖y‖. It reports whether the
// subspace broke down; otherwise y/‖y‖ becomes qₖ₊₁.
func (s *arnoldi) step(k int) (bool, error) {
	y, err := s.op(s.q(k))
	if err != nil {
		return false, krylovErrorf(opArnoldi, err)
	}
	scale := floats.Norm(y, 2)

	raw := s.h.RawMatrix()
	for j := 0; j <= k; j++ {
		hjk := floats.Dot(s.q(j), y)
		raw.Data[j*raw.Stride+k] = hjk
		floats.AddScaled(y, -hjk, s.q(j))
	}
	sub := floats.Norm(y, 2)
	raw.Data[(k+1)*raw.Stride+k] = sub

	if sub <= s.tol*scale {
		return true, nil
	}
	floats.ScaleTo(s.q(k+1), 1/sub, y)
	s.live = k + 2

	return false, nil
}

// solve minimizes ‖H[:k+2,:k+1]·y - β·e1‖ with a fresh Householder QR and
// returns x0 + Σ yⱼ·qⱼ together with the least-squares residual.
func (s *arnoldi) solve(k int, x0 []float64) ([]float64, float64, error) {
	block, err := s.h.Leading(k+2, k+1)
	if err != nil {
		return nil, 0, krylovErrorf(opArnoldi, err)
	}
	rhs := make([]float64, k+2)
	rhs[0] = s.beta
	y, res, err := qr.LeastSquares(block, rhs, qr.Householder{})
	if err != nil {
		return nil, 0, krylovErrorf(opArnoldi, fmt.Errorf("step %d: %w", k, err))
	}

	x := matrix.CloneVec(x0)
	for j, yj := range y {
		floats.AddScaled(x, yj, s.q(j))
	}

	return x, res, nil
}
