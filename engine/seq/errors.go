// SPDX-License-Identifier: MIT
// Package seq: sentinel error set.

package seq

import "errors"

var (
	// ErrShapeMismatch indicates the process/output-variable shapes disagree.
	ErrShapeMismatch = errors.New("seq: mean length does not match output variable count")

	// ErrUnknownPath indicates an unrecognized PathKind.
	ErrUnknownPath = errors.New("seq: unknown path kind")
)
