// SPDX-License-Identifier: MIT
//
// model_gaussian.go — gaussianModel: the Gaussian branch of spec §4.5
// step 4, Kriging = Kriging(func, mean), prior = N(mean, sqrt(sill)).

package seq

import (
	"math"
	"math/rand/v2"

	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/krige"
	"github.com/geostoch/fieldsim/prng"
	"github.com/geostoch/fieldsim/spatial"
)

type gaussianModel struct {
	fn   *covfunc.Function
	mean float64
}

// Prior implements probModel: a draw from N(mean, sqrt(sill)), used when
// a cell has fewer than MinNeigh informed neighbors.
func (m *gaussianModel) Prior(rng *rand.Rand) float64 {
	return prng.Normal(rng, m.mean, math.Sqrt(m.fn.Sill()))
}

// FitPredict implements probModel: fits ordinary Kriging to the local
// neighborhood and draws from the resulting Kriging posterior, a Gaussian
// with the fitted mean and variance at target. Returns ok=false on a
// singular fit (KrigingSystemSingular), for the caller to fall through to
// Prior.
func (m *gaussianModel) FitPredict(rng *rand.Rand, localDom spatial.Domain, localValues []float64, target spatial.Point) (float64, bool) {
	pred, err := krige.Fit(m.fn, localDom, localValues)
	if err != nil {
		return 0, false
	}
	mean, variance, err := pred.Predict(target)
	if err != nil {
		return 0, false
	}
	return prng.Normal(rng, mean, math.Sqrt(variance)), true
}
