// SPDX-License-Identifier: MIT
// Package krige: sentinel error set.

package krige

import "errors"

var (
	// ErrEmptyNeighborhood indicates Fit was called with zero points.
	ErrEmptyNeighborhood = errors.New("krige: neighborhood has no points")

	// ErrLengthMismatch indicates points and values disagree in length.
	ErrLengthMismatch = errors.New("krige: points and values length mismatch")

	// ErrSingular indicates the ordinary-Kriging normal-equations system
	// could not be solved (degenerate or duplicate point configuration).
	ErrSingular = errors.New("krige: singular kriging system")
)
