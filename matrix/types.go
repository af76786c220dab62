// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract consumed by every solver package.
// Concrete storage lives in impl_dense.go; kernels in impl_linear_algebra.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Solver packages accept any Matrix. Inputs that are not *Dense are copied
// once into a *Dense (see DenseCopyOf) before any numeric work starts, so a
// custom implementation only pays the interface cost at the boundary.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
