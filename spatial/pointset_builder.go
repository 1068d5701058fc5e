// SPDX-License-Identifier: MIT
//
// pointset_builder.go — NewRandomPointSet constructor, grounded on the
// teacher's builder.RandomSparse: fail-fast validation, RNG required only
// when actually sampling, stable per-point trial order for a fixed seed.

package spatial

import (
	"errors"
	"math/rand/v2"
)

// ErrTooFewPoints indicates n < 1 was requested of NewRandomPointSet.
var ErrTooFewPoints = errors.New("spatial: n must be >= 1")

// Deterministic defaults for NewRandomPointSet.
const (
	defaultBoundsMin = 0.0
	defaultBoundsMax = 1.0
)

// pointSetConfig aggregates NewRandomPointSet construction knobs.
type pointSetConfig struct {
	boundsMin []float64
	boundsMax []float64
	rng       *rand.Rand
}

// PointSetOption configures NewRandomPointSet.
type PointSetOption func(*pointSetConfig)

// WithBounds restricts sampled coordinates to [min[k], max[k]] per axis k.
func WithBounds(min, max []float64) PointSetOption {
	return func(c *pointSetConfig) {
		c.boundsMin = append([]float64(nil), min...)
		c.boundsMax = append([]float64(nil), max...)
	}
}

// WithRand supplies the PRNG used for coordinate sampling. Supply it to pick
// the seed; if omitted, a PCG source seeded with (0, 0) is used, so
// every call without WithRand yields the same points.
func WithRand(rng *rand.Rand) PointSetOption {
	return func(c *pointSetConfig) { c.rng = rng }
}

// NewRandomPointSet samples n uniformly-distributed points in `dims`
// dimensions, defaulting to the unit box [0,1]^dims unless WithBounds
// overrides it. Returns ErrTooFewPoints if n < 1.
//
// Determinism: for a fixed WithRand seed, point order and coordinates are
// stable (points are drawn point-major: every axis of point 0, then
// point 1, ...).
func NewRandomPointSet(n, dims int, opts ...PointSetOption) (*PointSet, error) {
	if n < 1 {
		return nil, ErrTooFewPoints
	}

	cfg := pointSetConfig{
		boundsMin: filled(dims, defaultBoundsMin),
		boundsMax: filled(dims, defaultBoundsMax),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(0, 0))
	}

	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		coords := make([]float64, dims)
		for k := 0; k < dims; k++ {
			lo, hi := cfg.boundsMin[k], cfg.boundsMax[k]
			coords[k] = lo + cfg.rng.Float64()*(hi-lo)
		}
		pts[i] = Point{Coords: coords}
	}

	return NewPointSet(pts)
}
