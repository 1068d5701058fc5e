// SPDX-License-Identifier: MIT
// Package attr: sentinel error set.

package attr

import "errors"

var (
	// ErrUnknownColumn indicates a lookup for a variable name not in the schema.
	ErrUnknownColumn = errors.New("attr: unknown column")

	// ErrIndexOutOfRange indicates a cell index outside [0, ElementCount).
	ErrIndexOutOfRange = errors.New("attr: index out of range")

	// ErrDuplicateColumn indicates NewTable was given a repeated variable name.
	ErrDuplicateColumn = errors.New("attr: duplicate column name")

	// ErrNotFullyWritten indicates AllWritten found an unset cell where the
	// "every buffer cell is written exactly once" invariant requires one.
	ErrNotFullyWritten = errors.New("attr: not every cell was written")
)
