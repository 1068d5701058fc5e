// SPDX-License-Identifier: MIT
// Package process: sentinel error set.

package process

import "errors"

var (
	// ErrShapeMismatch indicates |mean| != variate_count(func) (Gaussian)
	// or len(prob) != variate_count(func) (Indicator).
	ErrShapeMismatch = errors.New("process: shape mismatch against variate count")

	// ErrNotSimplex indicates prob does not sum to 1 within tolerance, or
	// has a negative entry.
	ErrNotSimplex = errors.New("process: probabilities must form a simplex")

	// ErrInvalidRange indicates a non-positive LindgrenProcess.Range.
	ErrInvalidRange = errors.New("process: range must be > 0")

	// ErrInvalidSill indicates a non-positive LindgrenProcess.Sill.
	ErrInvalidSill = errors.New("process: sill must be > 0")

	// ErrEmptyKind indicates an External descriptor with an empty Kind.
	ErrEmptyKind = errors.New("process: external descriptor kind is empty")
)
