// Package qr factorizes an n×m matrix (n ≥ m) as A = Q·R.
//
// Three strategies implement the Factorizer contract:
//
//   - Householder (default): reflectors with cancellation-free sign choice,
//     full n×n orthogonal Q and n×m upper-triangular R.
//   - ClassicalGramSchmidt: thin QR, projects the original column.
//   - ModifiedGramSchmidt: thin QR, projects the running orthogonalized vector.
//
// Linearly dependent columns never raise an error; they show up as a (near)
// zero diagonal entry of R, which Factorization.Rank reports. LeastSquares
// solves min ‖A·x - b‖ on top of any strategy and is the inner solver of
// the krylov package's GMRES.
package qr
