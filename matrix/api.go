// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Tril/Triu/Diag carve out the pieces of a splitting A = D - L - U.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the seed of Q in Householder QR and of P in LU.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiag returns the square matrix with d on its diagonal.
func NewDiag(d []float64) (*Dense, error) {
	n := len(d)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		D.data[i*n+i] = v
	}

	return D, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Structural extraction ----------

// Diagonal returns a copy of the main diagonal of a square matrix.
func Diagonal(m Matrix) ([]float64, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	out := make([]float64, d.r)
	for i := range out {
		out[i] = d.data[i*d.c+i]
	}

	return out, nil
}

// Tril returns the lower triangle of m below diagonal k (k = 0 keeps the
// diagonal, k = -1 is the strict lower part). Shape is preserved.
// Time: O(r*c). Space: O(r*c).
func Tril(m Matrix, k int) (*Dense, error) {
	return ewTriangle(m, k, true, "Tril")
}

// Triu returns the upper triangle of m above diagonal k (k = 0 keeps the
// diagonal, k = 1 is the strict upper part). Shape is preserved.
func Triu(m Matrix, k int) (*Dense, error) {
	return ewTriangle(m, k, false, "Triu")
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests (PA ≈ LU, QR ≈ A).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
