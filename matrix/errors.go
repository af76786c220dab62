// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by every solver package.
// This file defines ONLY package-level sentinel errors. Algorithms return these
// sentinels (optionally wrapped with an operation tag) and tests match them via
// errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Downstream
// packages (lu, qr, cholesky, stationary, krylov) wrap these sentinels with
// fmt.Errorf("<Op>: %w", ErrX) so callers keep using errors.Is.
//
// ERROR PRIORITY (checked in this order at every entry point):
// nil -> shape -> vector length -> numeric (NaN/Inf) -> structural (singular, asymmetric).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested window or ragged row layout is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// non-square input to a factorization, Mul with a.Cols != b.Rows, or a
	// right-hand side whose length does not match the system.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a pivot (or diagonal entry used as a divisor)
	// is below the configured threshold during elimination or substitution.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
