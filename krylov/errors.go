// SPDX-License-Identifier: MIT
// Package krylov: error surface.
// Shape and singularity failures reuse the matrix sentinels; the sentinels
// below cover what is specific to Krylov iterations.

package krylov

import (
	"errors"
	"fmt"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("krylov: invalid option supplied")

	// ErrNegativeIterations is returned when the subspace budget m is below zero.
	ErrNegativeIterations = errors.New("krylov: iteration count must be >= 0")

	// ErrIndefinite is returned by ConjugateGradient when a search direction
	// has dᵀ·A·d <= 0, i.e. A is not positive definite.
	ErrIndefinite = errors.New("krylov: matrix is not positive definite")
)

// Operation tags used by krylovErrorf.
const (
	opGMRES         = "krylov.GMRES"
	opPrecondGMRES  = "krylov.PreconditionedGMRES"
	opCG            = "krylov.ConjugateGradient"
	opJacobiPrecond = "krylov.JacobiPreconditioner"
	opSSORPrecond   = "krylov.SSORPreconditioner"
	opArnoldi       = "krylov.arnoldi"
)

func krylovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
