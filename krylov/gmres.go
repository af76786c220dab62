// SPDX-License-Identifier: MIT

package krylov

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/lu"
	"github.com/katalvlaran/linsolve/matrix"
)

// GMRES solves A·x = b by minimizing the residual over a Krylov subspace of
// dimension at most m built from r0 = b - A·x0.
// MAIN DESCRIPTION:
//   - One growth cycle, no restarts. The best iterate of the grown subspace is
//     returned whether or not it is accurate; check Result.ResidualNorms.
//
// Implementation:
//   - Stage 1: resolve options, validate A, b, x0 (nil x0 → zero vector).
//   - Stage 2: r0 = b - A·x0; r0 == 0 returns x0 with Iterations == 0.
//   - Stage 3: for k = 0..m-1 run one Arnoldi step, then solve the
//     (k+2)×(k+1) Hessenberg least-squares problem and form xₖ = x0 + Qₖ·y.
//   - Stage 4: stop early on lucky breakdown (H[k+1,k] <= tol·‖A·qₖ‖).
//
// Errors:
//   - ErrNegativeIterations, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf, matrix.ErrSingular (rank-deficient Hessenberg block,
//     which needs a singular A), ctx.Err(), or an OnIteration error.
//
// Complexity:
//   - Time O(m·n² + m⁴) (one matvec plus one small QR per step), Space O(m·n).
func GMRES(a matrix.Matrix, b, x0 []float64, m int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	x, err := prepare(a, b, x0, m, opGMRES)
	if err != nil {
		return nil, err
	}
	r0, err := matrix.Residual(a, x, b)
	if err != nil {
		return nil, krylovErrorf(opGMRES, err)
	}
	op := func(v []float64) ([]float64, error) { return matrix.MatVec(a, v) }

	return run(op, r0, x, m, o, opGMRES)
}

// PreconditionedGMRES runs GMRES on M⁻¹·A·x = M⁻¹·b.
// M is factorized once with lu.Factorize; every product A·q is followed by
// two triangular solves against that factorization, so M⁻¹·A is never formed.
//
// Errors: as GMRES, plus matrix.ErrSingular when M cannot be factorized.
func PreconditionedGMRES(a matrix.Matrix, b, x0 []float64, m int, mp matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	x, err := prepare(a, b, x0, m, opPrecondGMRES)
	if err != nil {
		return nil, err
	}
	pf, err := factorizePreconditioner(mp, a.Rows(), opPrecondGMRES)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Residual(a, x, b)
	if err != nil {
		return nil, krylovErrorf(opPrecondGMRES, err)
	}
	r0, err := pf.Solve(r)
	if err != nil {
		return nil, krylovErrorf(opPrecondGMRES, err)
	}
	op := func(v []float64) ([]float64, error) {
		av, err := matrix.MatVec(a, v)
		if err != nil {
			return nil, err
		}

		return pf.Solve(av)
	}

	return run(op, r0, x, m, o, opPrecondGMRES)
}

// prepare validates the common GMRES arguments and returns a private copy of
// x0 (or the zero vector).
func prepare(a matrix.Matrix, b, x0 []float64, m int, tag string) ([]float64, error) {
	if m < 0 {
		return nil, krylovErrorf(tag, ErrNegativeIterations)
	}

	return startVector(a, b, x0, tag)
}

func startVector(a matrix.Matrix, b, x0 []float64, tag string) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, krylovErrorf(tag, err)
	}
	n := a.Rows()
	if x0 == nil {
		return make([]float64, n), nil
	}
	if err := matrix.ValidateVecLen(x0, n); err != nil {
		return nil, krylovErrorf(tag, err)
	}
	if err := matrix.ValidateFiniteVec(x0); err != nil {
		return nil, krylovErrorf(tag, err)
	}

	return matrix.CloneVec(x0), nil
}

// factorizePreconditioner checks that M is n×n and factorizes it.
func factorizePreconditioner(mp matrix.Matrix, n int, tag string) (*lu.Factorization, error) {
	if err := matrix.ValidateSquareNonNil(mp); err != nil {
		return nil, krylovErrorf(tag, err)
	}
	if mp.Rows() != n {
		return nil, krylovErrorf(tag, matrix.ErrDimensionMismatch)
	}
	f, err := lu.Factorize(mp)
	if err != nil {
		return nil, krylovErrorf(tag, err)
	}

	return f, nil
}

// run is the Arnoldi / least-squares loop shared by both GMRES variants.
func run(op operator, r0, x0 []float64, m int, o Options, tag string) (*Result, error) {
	res := &Result{X: x0}
	if m == 0 || floats.Norm(r0, 2) == 0 {
		return res, nil
	}

	s, err := newArnoldi(op, r0, m, o.breakdownTol)
	if err != nil {
		return nil, krylovErrorf(tag, err)
	}
	res.ResidualNorms = make([]float64, 0, m)

	var (
		broke bool
		x     []float64
		rn    float64
	)
	for k := 0; k < m; k++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if broke, err = s.step(k); err != nil {
			return nil, krylovErrorf(tag, err)
		}
		if x, rn, err = s.solve(k, x0); err != nil {
			return nil, krylovErrorf(tag, err)
		}
		res.X = x
		res.Iterations = k + 1
		res.ResidualNorms = append(res.ResidualNorms, rn)
		if err = o.OnIteration(k+1, x, rn); err != nil {
			return nil, err
		}
		if broke {
			res.Breakdown = true
			break
		}
	}

	return res, nil
}
