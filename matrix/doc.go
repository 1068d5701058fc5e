// Package matrix provides a dense float64 matrix type and the linear-algebra
// kernels built on top of it: element-wise arithmetic, transpose, scaling,
// Hadamard product, mat-vec, symmetric eigen-decomposition (Jacobi), LU
// (Doolittle, no pivoting), QR, inverse, and column statistics (centering,
// normalization, covariance, correlation).
//
// The matrix/ops subpackage holds a separate set of factorizations (LU,
// Cholesky, inverse, Jacobi eigen) and the triangular solves used with
// Cholesky; its LU does not pivot either.
//
// Matrices are dense, row-major, O(n^2) in memory; this package targets the
// small-to-medium covariance and precision matrices used by the field-
// simulation engines, not large sparse systems.
package matrix
