// SPDX-License-Identifier: MIT

package qr

import "fmt"

// Operation tags used by qrErrorf.
const (
	opHouseholder  = "qr.Householder"
	opClassicalGS  = "qr.ClassicalGramSchmidt"
	opModifiedGS   = "qr.ModifiedGramSchmidt"
	opLeastSquares = "qr.LeastSquares"
)

// qrErrorf wraps err with an operation tag, preserving the sentinel via %w.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
