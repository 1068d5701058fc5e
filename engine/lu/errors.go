// SPDX-License-Identifier: MIT
// Package lu: sentinel error set.

package lu

import "errors"

var (
	// ErrNotApplicable indicates the function fails the LU engine's
	// applicability check (not stationary, symmetric, and banded).
	ErrNotApplicable = errors.New("lu: function is not stationary/symmetric/banded")

	// ErrShapeMismatch indicates the process mean/variate count does not
	// match the requested output variable names.
	ErrShapeMismatch = errors.New("lu: mean length does not match output variable count")

	// ErrUnsupportedVariateCount indicates variate_count(func) is outside
	// the supported {1, 2} range.
	ErrUnsupportedVariateCount = errors.New("lu: variate count must be 1 or 2")

	// ErrNotPositiveDefinite wraps a Cholesky factorization failure.
	ErrNotPositiveDefinite = errors.New("lu: covariance block is not positive-definite")

	// ErrBivariateShapeMismatch indicates a bivariate co-simulation's two
	// variables have differently-sized "to simulate" index sets, so the
	// second variable's draw cannot reuse the first's white noise
	// element-for-element.
	ErrBivariateShapeMismatch = errors.New("lu: bivariate co-simulation requires matching unconditioned-cell counts across variables")
)
