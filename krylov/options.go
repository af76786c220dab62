// SPDX-License-Identifier: MIT

package krylov

import (
	"context"
	"fmt"
	"math"
)

// DefaultBreakdownTolerance makes the lucky-breakdown test exact:
// the Arnoldi process stops only when H[k+1,k] is exactly zero.
const DefaultBreakdownTolerance = 0.0

const panicBreakdownTolerance = "krylov: WithBreakdownTolerance: tol must be finite, non-negative"

// Option configures GMRES, PreconditionedGMRES and ConjugateGradient.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx is checked before every iteration; cancellation aborts with ctx.Err().
	Ctx context.Context

	// OnIteration is called after every iteration with the 1-based iteration
	// number, the current iterate and the current residual norm. A non-nil
	// error aborts the solve and is returned unchanged.
	OnIteration func(iter int, x []float64, residual float64) error

	breakdownTol float64
	maxIter      int // ConjugateGradient step cap; 0 means n

	// internal error recorded during option parsing
	err error
}

// BreakdownTolerance reports the resolved relative breakdown threshold.
func (o Options) BreakdownTolerance() float64 { return o.breakdownTol }

// DefaultOptions returns Options with a background context, a no-op hook and
// DefaultBreakdownTolerance.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnIteration:  func(int, []float64, float64) error { return nil },
		breakdownTol: DefaultBreakdownTolerance,
	}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIteration registers a per-iteration callback.
func WithOnIteration(fn func(iter int, x []float64, residual float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithBreakdownTolerance declares breakdown once H[k+1,k] <= tol·‖A·qₖ‖.
//
// Panics with a stable message when tol is negative, NaN or ±Inf.
func WithBreakdownTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicBreakdownTolerance)
	}

	return func(o *Options) { o.breakdownTol = tol }
}

// WithMaxIterations caps ConjugateGradient at n steps instead of the system
// size. n < 1 is recorded and surfaces as ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxIter = n
	}
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// Result is the outcome of a Krylov solve.
type Result struct {
	// X is the best iterate found.
	X []float64

	// Iterations is the number of iterations performed. Zero when the initial
	// residual already vanished.
	Iterations int

	// Breakdown reports early exact termination: a lucky breakdown in GMRES,
	// or an exactly zero residual in ConjugateGradient.
	Breakdown bool

	// ResidualNorms[i] is the residual norm after iteration i+1. For GMRES it
	// is the least-squares residual of the (possibly preconditioned) system.
	ResidualNorms []float64
}
