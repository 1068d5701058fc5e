// SPDX-License-Identifier: MIT

package prng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// categoricalSource adapts a math/rand/v2 generator to the
// golang.org/x/exp/rand.Source interface that gonum's distuv package
// expects. distuv.Categorical never calls Seed after construction; it is
// implemented as a no-op to satisfy the interface.
type categoricalSource struct {
	r *rand.Rand
}

func (s categoricalSource) Uint64() uint64 { return s.r.Uint64() }
func (s categoricalSource) Seed(uint64)    {}

// Categorical draws a single category index in [0, len(prob)) from rng,
// with the given (not necessarily normalized) probability weights — the
// indicator process's prior and the SEQ engine's per-cell indicator draw
// both route through this.
func Categorical(rng *rand.Rand, prob []float64) int {
	src := categoricalSource{r: rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))}
	gen := distuv.NewCategorical(prob, src)
	return int(gen.Rand())
}
