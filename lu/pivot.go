// SPDX-License-Identifier: MIT

package lu

import "golang.org/x/exp/constraints"

// abs returns |v| for any signed numeric type.
func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// argMaxAbs scans data[start], data[start+stride], ... (n entries) and
// returns the offset k (0 ≤ k < n) of the first entry with the largest
// magnitude together with that magnitude. Ties keep the lowest index.
func argMaxAbs[T constraints.Signed | constraints.Float](data []T, start, n, stride int) (int, T) {
	best, bestVal := 0, abs(data[start])
	var v T
	for k := 1; k < n; k++ {
		v = abs(data[start+k*stride])
		if v > bestVal {
			best, bestVal = k, v
		}
	}

	return best, bestVal
}
