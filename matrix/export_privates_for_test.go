// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels and panic messages.
//
// Purpose:
//   - Expose unexported messages and ew* kernels to matrix_test only.
//   - The file ends in _test.go, so none of this reaches production builds.

// PanicEpsilonInvalid_TestOnly is the stable WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// EwTriangle_TestOnly forwards to the private triangle kernel behind Tril/Triu.
func EwTriangle_TestOnly(m Matrix, k int, lower bool) (*Dense, error) {
	return ewTriangle(m, k, lower, "EwTriangle")
}

// IsNonFinite_TestOnly forwards to the private NaN/Inf predicate.
func IsNonFinite_TestOnly(v float64) bool { return isNonFinite(v) }
