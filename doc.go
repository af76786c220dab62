// Package linsolve is a dense linear-system solver core: direct
// factorizations, orthogonal decompositions and iterative solvers that share
// one Matrix type and one error vocabulary.
//
// 🚀 What is inside?
//
//	• Direct solves: PA = LU with partial pivoting, forward/back substitution
//	• Orthogonal factorizations: Householder QR, classical & modified Gram-Schmidt
//	• Stationary iterations: Jacobi, Gauss-Seidel, SOR over A = D - L - U
//	• Krylov methods: GMRES (plain and preconditioned), preconditioned CG
//
// ✨ Ground rules
//
//   - Inputs are never mutated; every call works on private copies.
//   - Failures are sentinel errors wrapped with the operation name; match them
//     with errors.Is (matrix.ErrSingular, matrix.ErrDimensionMismatch, ...).
//   - Iterative solvers honour a fixed step budget and never treat slow
//     convergence as an error; residual norms are reported instead.
//
// Everything is organized under these subpackages:
//
//	matrix/     — Dense type, validators, BLAS-backed products, vector helpers
//	lu/         — PA = LU, Doolittle, substitutions, Det, Inverse
//	qr/         — Householder / Gram-Schmidt strategies, least squares
//	cholesky/   — RᵀR factorization of symmetric positive definite matrices
//	stationary/ — Jacobi, Gauss-Seidel, SOR with hooks and residual history
//	krylov/     — GMRES, preconditioned GMRES, conjugate gradient, preconditioners
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, -2, 2}, {-2, 2, -4}, {2, -4, 11}})
//	f, _ := lu.Factorize(a)
//	x, _ := f.Solve([]float64{6, -10, 27}) // x ≈ [1 2 3]
//
//	go get github.com/katalvlaran/linsolve
package linsolve
