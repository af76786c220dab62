// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// ConjugateGradient solves a symmetric positive definite system A·x = b with
// the preconditioned conjugate gradient method.
// MAIN DESCRIPTION:
//   - At most n steps (WithMaxIterations lowers the cap). Each step
//     α = rᵀz / dᵀAd, x += α·d, r -= α·A·d, z = M⁻¹r,
//     β = rᵀz / r_oldᵀz_old, d = z + β·d.
//   - mp == nil means no preconditioning (z = r). Otherwise M is factorized
//     once with lu.Factorize and z = M⁻¹r is two triangular solves.
//
// Behavior highlights:
//   - The loop stops early only when every component of r is exactly zero;
//     Result.Breakdown is set when that happens after at least one step.
//   - A non-converged result is not an error; inspect Result.ResidualNorms.
//
// Errors:
//   - ErrOptionViolation, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf, matrix.ErrAsymmetry (A not symmetric within
//     matrix.DefaultEpsilon), matrix.ErrSingular (M not factorizable),
//     ErrIndefinite (dᵀAd <= 0), ctx.Err(), or an OnIteration error.
//
// Complexity:
//   - Time O(n³) for n steps, Space O(n) besides the factorization of M.
func ConjugateGradient(a matrix.Matrix, b, x0 []float64, mp matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	x, err := startVector(a, b, x0, opCG)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSymmetric(a, matrix.DefaultEpsilon); err != nil {
		return nil, krylovErrorf(opCG, err)
	}
	n := a.Rows()

	precond := func(r []float64) ([]float64, error) { return matrix.CloneVec(r), nil }
	if mp != nil {
		var pf *lu.Factorization
		if pf, err = factorizePreconditioner(mp, n, opCG); err != nil {
			return nil, err
		}
		precond = pf.Solve
	}

	steps := n
	if o.maxIter > 0 {
		steps = o.maxIter
	}

	r, err := matrix.Residual(a, x, b)
	if err != nil {
		return nil, krylovErrorf(opCG, err)
	}
	z, err := precond(r)
	if err != nil {
		return nil, krylovErrorf(opCG, err)
	}
	d := matrix.CloneVec(z)
	rz := floats.Dot(r, z)

	res := &Result{X: x, ResidualNorms: make([]float64, 0, steps)}
	var ad []float64
	for i := 0; i < steps; i++ {
		if isZero(r) {
			res.Breakdown = i > 0
			break
		}
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if ad, err = matrix.MatVec(a, d); err != nil {
			return nil, krylovErrorf(opCG, err)
		}
		dad := floats.Dot(d, ad)
		if !(dad > 0) {
			return nil, krylovErrorf(opCG, fmt.Errorf("step %d: dᵀAd = %g: %w", i+1, dad, ErrIndefinite))
		}
		alpha := rz / dad
		floats.AddScaled(x, alpha, d)
		floats.AddScaled(r, -alpha, ad)
		if z, err = precond(r); err != nil {
			return nil, krylovErrorf(opCG, err)
		}
		rzNew := floats.Dot(r, z)
		beta := rzNew / rz
		rz = rzNew
		// d = z + β·d
		floats.AddScaledTo(d, z, beta, d)

		rn := floats.Norm(r, 2)
		res.Iterations = i + 1
		res.ResidualNorms = append(res.ResidualNorms, rn)
		if err = o.OnIteration(i+1, x, rn); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}
