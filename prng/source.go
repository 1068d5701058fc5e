// SPDX-License-Identifier: MIT
//
// source.go — counter-based splittable PRNG, grounded on a seed registry's
// (masterSeed, streamCounter) -> rand.NewPCG(seed1, seed2) pattern,
// generalized from a monotonic global counter to an explicit
// (parentSeed, realizationIndex) pair so that child streams are pure
// functions of their coordinates rather than allocation order — required
// for worker-pool-invariant results (spec §5).

package prng

import "math/rand/v2"

// Source derives reproducible child PRNG streams from a single parent
// seed. Safe for concurrent use: Child performs no mutation, only a pure
// PCG construction from (parentSeed, realizationIndex).
type Source struct {
	parentSeed uint64
}

// NewSource builds a Source from a parent seed.
func NewSource(parentSeed uint64) *Source {
	return &Source{parentSeed: parentSeed}
}

// Child returns the PRNG stream for realization index i. Calling Child(i)
// any number of times, from any goroutine, in any order, always returns a
// generator with the same internal state — this is the splittable-PRNG
// contract the orchestrator's worker pool depends on.
func (s *Source) Child(i uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s.parentSeed, i))
}

// ParentSeed returns the seed this Source was built from.
func (s *Source) ParentSeed() uint64 { return s.parentSeed }
