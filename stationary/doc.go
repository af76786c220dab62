// Package stationary implements the classic splitting iterations for A·x = b:
// Jacobi, Gauss-Seidel and successive over-relaxation (SOR).
//
// With A = D - L - U (D the diagonal, L and U the negated strict triangles)
// one sweep of each method is
//
//	Jacobi:        x⁺ = D⁻¹(b + (L+U)·x)
//	Gauss-Seidel:  x⁺ᵢ uses the already-updated x⁺₀..x⁺ᵢ₋₁
//	SOR(ω):        x⁺ᵢ = (1-ω)·xᵢ + ω·gsᵢ
//
// Solve runs a fixed number of sweeps k and never stops early; it reports the
// final residual so callers can judge convergence themselves. Convergence is
// only guaranteed for strictly diagonally dominant (or, for Gauss-Seidel and
// SOR with 0 < ω < 2, symmetric positive definite) matrices. None of this is
// checked; a diverging run is returned as is.
//
// Jacobi sweeps can be spread across goroutines with WithWorkers. Because
// each component only reads the previous iterate, the parallel result is
// bitwise identical to the sequential one.
package stationary
