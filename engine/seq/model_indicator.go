// SPDX-License-Identifier: MIT
//
// model_indicator.go — indicatorModel: the Indicator branch of spec §4.5
// step 4, Kriging = Kriging(func, prob), prior = Categorical(prob). The
// local fit operates on one-hot-encoded category membership, one Kriging
// fit per category, with the resulting means clamped to [0,1] and
// renormalized into a posterior categorical distribution.

package seq

import (
	"math/rand/v2"

	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/krige"
	"github.com/geostoch/fieldsim/prng"
	"github.com/geostoch/fieldsim/spatial"
)

type indicatorModel struct {
	fn   *covfunc.Function
	prob []float64
}

// Prior implements probModel: a draw from the marginal Categorical(prob),
// returned as the 0-based category index.
func (m *indicatorModel) Prior(rng *rand.Rand) float64 {
	return float64(prng.Categorical(rng, m.prob))
}

// FitPredict implements probModel. localValues holds 0-based category
// indices (as written by a prior Prior/FitPredict draw, or bound
// conditioning data). Returns ok=false if every category's Kriging fit is
// singular, or the resulting posterior sums to zero after clamping.
func (m *indicatorModel) FitPredict(rng *rand.Rand, localDom spatial.Domain, localValues []float64, target spatial.Point) (float64, bool) {
	k := len(m.prob)
	posterior := make([]float64, k)
	oneHot := make([]float64, len(localValues))

	anyFit := false
	for c := 0; c < k; c++ {
		for i, v := range localValues {
			if int(v) == c {
				oneHot[i] = 1
			} else {
				oneHot[i] = 0
			}
		}
		pred, err := krige.Fit(m.fn, localDom, oneHot)
		if err != nil {
			continue
		}
		mean, _, err := pred.Predict(target)
		if err != nil {
			continue
		}
		anyFit = true
		posterior[c] = clamp01(mean)
	}
	if !anyFit {
		return 0, false
	}

	var sum float64
	for _, p := range posterior {
		sum += p
	}
	if sum <= 0 {
		return 0, false
	}
	for c := range posterior {
		posterior[c] /= sum
	}

	return float64(prng.Categorical(rng, posterior)), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
