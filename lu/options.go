// SPDX-License-Identifier: MIT

package lu

import "math"

// DefaultPivotTolerance is the float64 machine epsilon. A pivot whose
// magnitude falls below it aborts the factorization with ErrSingular.
const DefaultPivotTolerance = 2.220446049250313e-16

const panicPivotTolerance = "lu: WithPivotTolerance: tol must be finite, non-negative"

// Option configures Factorize and Doolittle.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	pivotTol float64
}

// PivotTolerance reports the resolved singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// WithPivotTolerance overrides the singularity threshold.
// tol == 0 rejects only exact zero pivots.
//
// Panics with a stable message when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolerance)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
