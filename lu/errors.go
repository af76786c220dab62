// SPDX-License-Identifier: MIT
// Package lu: error surface.
// The package reuses the shared matrix sentinels (ErrSingular,
// ErrDimensionMismatch, ErrNilMatrix, ...) and wraps them with an operation
// tag so callers keep matching via errors.Is.

package lu

import (
	"errors"
	"fmt"
)

// ErrPermutation indicates a Permutation that is not a bijection on 0..n-1.
var ErrPermutation = errors.New("lu: invalid permutation")

// Operation tags used by luErrorf.
const (
	opFactorize = "lu.Factorize"
	opDoolittle = "lu.Doolittle"
	opSolve     = "lu.Solve"
	opSolveMany = "lu.SolveMany"
	opForward   = "lu.ForwardSubstitute"
	opBack      = "lu.BackSubstitute"
	opInverse   = "lu.Inverse"
	opApply     = "lu.Permutation.Apply"
)

// luErrorf wraps err with an operation tag, preserving the sentinel via %w.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
