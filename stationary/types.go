// SPDX-License-Identifier: MIT
// Options and error definitions for the splitting-based solvers.

package stationary

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for stationary iteration.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stationary: invalid option supplied")

	// ErrNegativeSweeps is returned when the requested sweep count is below zero.
	ErrNegativeSweeps = errors.New("stationary: sweep count must be >= 0")

	// ErrNilMethod is returned when Solve is called without a Method.
	ErrNilMethod = errors.New("stationary: nil method")
)

const (
	opSplitting = "stationary.NewSplitting"
	opSolve     = "stationary.Solve"
)

func stationaryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx is checked between sweeps; cancellation aborts with ctx.Err().
	Ctx context.Context

	// OnSweep is called after every sweep with the 1-based sweep number and
	// the current iterate (read-only view). A non-nil error aborts the solve.
	OnSweep func(sweep int, x []float64) error

	// History records ‖b - A·x‖₂ after every sweep into Result.Residuals.
	History bool

	// Workers splits Jacobi sweeps across goroutines when > 1.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - background context
//   - no-op OnSweep
//   - no residual history
//   - a single worker
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnSweep: func(int, []float64) error { return nil },
		Workers: 1,
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

// WithOnSweep registers a callback run after each sweep; returning an error
// from it stops the solve.
func WithOnSweep(fn func(sweep int, x []float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}

// WithResidualHistory records the residual norm after every sweep.
func WithResidualHistory() Option {
	return func(o *Options) { o.History = true }
}

// WithWorkers sets the Jacobi goroutine count.
//
//	n >= 1: use n workers (1 means sequential)
//	n < 1 : invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Result is the outcome of a fixed-budget solve.
type Result struct {
	// X is the final iterate.
	X []float64

	// Sweeps is the number of sweeps actually performed (== k on success).
	Sweeps int

	// ResidualNorm is ‖b - A·X‖₂. It is always computed; it does not stop
	// the iteration.
	ResidualNorm float64

	// Residuals[i] is the residual norm after sweep i+1 (WithResidualHistory only).
	Residuals []float64
}
