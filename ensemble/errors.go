// SPDX-License-Identifier: MIT
// Package ensemble: sentinel error set.

package ensemble

import "errors"

var (
	// ErrEmptyEnsemble indicates every realization failed to fetch (or n
	// == 0), leaving no successful realization to reduce over.
	ErrEmptyEnsemble = errors.New("ensemble: no successfully fetched realization to reduce over")

	// ErrInsufficientRealizations indicates a reduction needing at least
	// two realizations (sample variance) got fewer.
	ErrInsufficientRealizations = errors.New("ensemble: at least two realizations are required")

	// ErrIndexOutOfRange indicates Fetch was called with i outside
	// [0, Len()).
	ErrIndexOutOfRange = errors.New("ensemble: realization index out of range")
)
