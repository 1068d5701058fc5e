// SPDX-License-Identifier: MIT
// Package binding: sentinel error set.

package binding

import "errors"

var (
	// ErrLengthMismatch indicates ExplicitInit's source/dest index arrays
	// have different lengths.
	ErrLengthMismatch = errors.New("binding: source and dest index arrays differ in length")

	// ErrIndexOutOfRange indicates a dest (or source) index outside the
	// target domain's (or data set's) element range.
	ErrIndexOutOfRange = errors.New("binding: index out of range")
)
