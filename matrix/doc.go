// Package matrix provides the dense storage and kernels shared by the solver
// packages (lu, qr, cholesky, stationary, krylov).
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors and a
//     zero-copy blas64.General view (RawMatrix) for BLAS kernels.
//   - Validated kernels: Add, Sub, Mul, Transpose, Scale, MatVec, MatTVec.
//   - Vector helpers built on gonum/floats: Dot, Norm2, Residual.
//   - Structural helpers: NewIdentity, NewDiag, Diagonal, Tril, Triu, AllClose.
//   - A single sentinel error set (ErrSingular, ErrDimensionMismatch, ...)
//     that every solver package wraps and callers match with errors.Is.
//
// Every kernel accepts any Matrix; *Dense operands take a flat fast path.
package matrix
