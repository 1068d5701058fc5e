// SPDX-License-Identifier: MIT
//
// path.go — PathKind: the traversal order a realization's sequential
// scan follows. Every strategy returns a permutation of 0..n-1.

package seq

import "github.com/geostoch/fieldsim/spatial"

// PathKind selects a traversal order for the sequential engine.
type PathKind int

const (
	// Raster visits elements in their natural (linear) domain order.
	Raster PathKind = iota
	// Dilation visits elements in expanding-neighborhood order outward
	// from the conditioning data (or index 0 if unconditioned).
	Dilation
	// Shuffle visits elements in a PRNG-determined random order.
	Shuffle
	// Source visits elements in increasing distance to the nearest
	// conditioning datum.
	Source
)

// BuildPath returns the visiting order for kind over dom, given the set of
// already-conditioned (data-bound) indices. rng is consumed only by
// Shuffle. Returns ErrUnknownPath for an unrecognized kind.
func BuildPath(kind PathKind, dom spatial.Domain, conditioned []int, rng randSource) ([]int, error) {
	switch kind {
	case Raster:
		return rasterPath(dom), nil
	case Dilation:
		return dilationPath(dom, conditioned)
	case Shuffle:
		return shufflePath(dom, rng), nil
	case Source:
		return sourcePath(dom, conditioned)
	default:
		return nil, ErrUnknownPath
	}
}

// randSource is the narrow *rand.Rand surface path construction needs.
type randSource interface {
	IntN(n int) int
}
