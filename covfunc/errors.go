// SPDX-License-Identifier: MIT
// Package covfunc: sentinel error set.

package covfunc

import "errors"

var (
	// ErrInvalidRange indicates a non-positive range parameter.
	ErrInvalidRange = errors.New("covfunc: range must be > 0")

	// ErrInvalidSill indicates a non-positive marginal sill.
	ErrInvalidSill = errors.New("covfunc: sill must be > 0")

	// ErrInvalidNugget indicates a negative nugget.
	ErrInvalidNugget = errors.New("covfunc: nugget must be >= 0")

	// ErrSillMatrixNotSquare indicates a malformed multivariate sill matrix.
	ErrSillMatrixNotSquare = errors.New("covfunc: sill matrix must be square")

	// ErrVariateCount indicates a caller's variable count disagrees with
	// variate_count(func) (process-mean length, output-schema length, ...).
	ErrVariateCount = errors.New("covfunc: variate count mismatch")

	// ErrUnsupportedShape indicates an unrecognized structural Shape value.
	ErrUnsupportedShape = errors.New("covfunc: unsupported structural shape")
)
