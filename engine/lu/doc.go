// Package lu implements dense-covariance Gaussian simulation: the whole
// domain's covariance is factored via Cholesky once (preprocess) and every
// realization is a single lower-triangular matrix-vector product with fresh
// white noise (single), giving exact conditioning at the cost of an O(n^3) factorization
// that only scales to domains the LU engine is applicable to.
package lu
