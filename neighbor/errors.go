// SPDX-License-Identifier: MIT
// Package neighbor: sentinel error set.

package neighbor

import "errors"

var (
	// ErrEmptyDomain indicates an index was built over a domain with no
	// elements.
	ErrEmptyDomain = errors.New("neighbor: domain has no elements")

	// ErrMaskLengthMismatch indicates a query's mask slice does not cover
	// every domain element.
	ErrMaskLengthMismatch = errors.New("neighbor: mask length does not match domain element count")
)
