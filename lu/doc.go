// Package lu implements PA = LU factorization with partial pivoting and the
// triangular substitutions built on top of it.
//
// A Factorization is computed once with Factorize and then reused for any
// number of right-hand sides via Solve, SolveMany, Det or Inverse. The
// exported ForwardSubstitute, LowerSolve and BackSubstitute are shared with
// the qr, cholesky and krylov packages.
//
// Singularity is detected during elimination: a pivot whose magnitude is
// below machine epsilon (see WithPivotTolerance) aborts the call with
// matrix.ErrSingular. No fallback strategy is attempted.
package lu
