// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) to avoid duplicating
//     tight loops across the public facades in api.go.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"math"
)

// ewTriangle keeps entries on one side of diagonal k and zeroes the rest.
// lower=true keeps j-i ≤ k; lower=false keeps j-i ≥ k.
func ewTriangle(X Matrix, k int, lower bool, tag string) (*Dense, error) {
	src, err := DenseCopyOf(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := src.r, src.c
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if lower && j-i > k || !lower && j-i < k {
				src.data[i*c+j] = 0
			}
		}
	}

	return src, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(av, bv, rtol, atol float64) bool {
	if math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return av == bv
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
