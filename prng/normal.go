// SPDX-License-Identifier: MIT
//
// normal.go — standard-normal draws on top of a caller-supplied stream via
// the Box-Muller transform, so every draw stays coupled to the caller's
// reproducible (parentSeed, realizationIndex)-derived sequence rather than
// spinning up a disconnected Source per call.

package prng

import (
	"math"
	"math/rand/v2"
)

// Normal draws a single N(mean, sigma) value from rng.
func Normal(rng *rand.Rand, mean, sigma float64) float64 {
	return mean + sigma*StdNormal(rng)
}

// StdNormal draws a single N(0,1) value from rng via Box-Muller.
func StdNormal(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64() // avoid log(0)
	}
	u2 := rng.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	return r * math.Cos(2*math.Pi*u2)
}

// StdNormalVector draws n independent standard-normal values from rng —
// the white-noise draw every engine's single-realization step needs
// (LU's w, FFT's noise field, Lindgren's w).
func StdNormalVector(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = StdNormal(rng)
	}
	return out
}
