// SPDX-License-Identifier: MIT
// Package spatial: sentinel error set.

package spatial

import "errors"

var (
	// ErrEmptyDomain indicates a domain with zero elements was rejected;
	// every operation in this module assumes element_count(domain) > 0.
	ErrEmptyDomain = errors.New("spatial: domain has no elements")

	// ErrBadShape indicates a grid shape tuple with a non-positive axis.
	ErrBadShape = errors.New("spatial: grid shape must be all-positive")

	// ErrDimMismatch indicates origin/step/shape slices of mismatched length.
	ErrDimMismatch = errors.New("spatial: dimension mismatch between shape/origin/step")

	// ErrIndexOutOfRange indicates an element index outside [0, ElementCount).
	ErrIndexOutOfRange = errors.New("spatial: index out of range")

	// ErrEmptyView indicates a View was constructed with no indices.
	ErrEmptyView = errors.New("spatial: view has no indices")

	// ErrNilParent indicates a View was constructed over a nil parent domain.
	ErrNilParent = errors.New("spatial: view parent is nil")
)
