// Package krylov implements Krylov-subspace solvers on dense matrices:
// GMRES (plain and with a fixed preconditioner) and the preconditioned
// conjugate gradient method.
//
// GMRES runs a single growth cycle of at most m Arnoldi steps. The basis and
// the Hessenberg matrix are preallocated for m steps. After every step the
// small (k+2)×(k+1) least-squares problem is solved with a fresh Householder
// QR from package qr, so each Result.ResidualNorms entry is exact for its
// subspace. The loop stops early on a lucky breakdown (H[k+1,k] == 0 by
// default). No restarts are attempted and non-convergence is not an error.
//
// A preconditioner M is factorized once with package lu; every product A·q
// is then followed by two triangular solves, so M⁻¹·A is never formed.
// JacobiPreconditioner and SSORPreconditioner build common choices of M.
package krylov
