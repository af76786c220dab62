// SPDX-License-Identifier: MIT

package stationary

import (
	"github.com/katalvlaran/linsolve/matrix"
)

// Solve runs exactly k sweeps of method on A·x = b starting from x0.
// MAIN DESCRIPTION:
//   - Fixed step budget: there is no convergence test. Callers decide
//     convergence from Result.ResidualNorm / Result.Residuals or OnSweep.
//
// Implementation:
//   - Stage 1: resolve options (ErrOptionViolation), validate A and b, x0.
//   - Stage 2: build the splitting once.
//   - Stage 3: k sweeps; between sweeps check ctx, record history, call OnSweep.
//   - Stage 4: compute the final residual norm.
//
// Behavior highlights:
//   - x0 == nil starts from the zero vector; x0 is never mutated.
//   - k == 0 returns a copy of x0.
//   - Divergence (A not dominant, ω outside (0,2)) is not an error.
//
// Errors:
//   - ErrOptionViolation, ErrNegativeSweeps, ErrNilMethod,
//     matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf,
//     matrix.ErrSingular (zero diagonal), ctx.Err(), or an OnSweep error.
//
// Complexity:
//   - Time O(k·n²), Space O(n²) for the splitting.
func Solve(a matrix.Matrix, b, x0 []float64, k int, method Method, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if method == nil {
		return nil, stationaryErrorf(opSolve, ErrNilMethod)
	}
	if k < 0 {
		return nil, stationaryErrorf(opSolve, ErrNegativeSweeps)
	}
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, stationaryErrorf(opSolve, err)
	}
	n := a.Rows()
	x := make([]float64, n)
	if x0 != nil {
		if err := matrix.ValidateVecLen(x0, n); err != nil {
			return nil, stationaryErrorf(opSolve, err)
		}
		copy(x, x0)
	}

	s, err := NewSplitting(a)
	if err != nil {
		return nil, stationaryErrorf(opSolve, err)
	}
	if _, ok := method.(Jacobi); ok && o.Workers > 1 {
		method = parallelJacobi{workers: o.Workers}
	}

	// residuals are measured against the private copy held by the splitting
	residual := func() float64 {
		r, _ := matrix.ResidualNorm(s.a, x, b)
		return r
	}

	res := &Result{}
	if o.History {
		res.Residuals = make([]float64, 0, k)
	}
	scratch := make([]float64, n)
	for sweep := 1; sweep <= k; sweep++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		method.Sweep(s, b, x, scratch)
		res.Sweeps = sweep
		if o.History {
			res.Residuals = append(res.Residuals, residual())
		}
		if err = o.OnSweep(sweep, x); err != nil {
			return nil, err
		}
	}
	res.X = x
	res.ResidualNorm = residual()

	return res, nil
}

// SolveJacobi runs k Jacobi sweeps and returns the final iterate.
func SolveJacobi(a matrix.Matrix, b, x0 []float64, k int, opts ...Option) ([]float64, error) {
	return solveX(a, b, x0, k, Jacobi{}, opts...)
}

// SolveGaussSeidel runs k Gauss-Seidel sweeps and returns the final iterate.
func SolveGaussSeidel(a matrix.Matrix, b, x0 []float64, k int, opts ...Option) ([]float64, error) {
	return solveX(a, b, x0, k, GaussSeidel{}, opts...)
}

// SolveSOR runs k SOR(w) sweeps and returns the final iterate.
func SolveSOR(a matrix.Matrix, b, x0 []float64, k int, w float64, opts ...Option) ([]float64, error) {
	return solveX(a, b, x0, k, SOR{Omega: w}, opts...)
}

func solveX(a matrix.Matrix, b, x0 []float64, k int, m Method, opts ...Option) ([]float64, error) {
	res, err := Solve(a, b, x0, k, m, opts...)
	if err != nil {
		return nil, err
	}

	return res.X, nil
}
