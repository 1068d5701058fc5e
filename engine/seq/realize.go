// SPDX-License-Identifier: MIT
//
// realize.go — Single: one realization's sequential scan over art.path,
// drawing each not-yet-written cell from a local-neighborhood Kriging
// posterior (falling back to the prior on an under-informed neighborhood
// or a singular fit), per spec §4.5 steps 3-5.

package seq

import (
	"math/rand/v2"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/spatial"
)

// Single draws one realization from art using rng. The traversal order is
// the artifact's fixed path; a fixed path plus a fixed rng always produces
// the same sequence of draws (spec's ordering contract).
func Single(rng *rand.Rand, art *Artifact) (*attr.Table, error) {
	n := art.dom.ElementCount()
	out, err := attr.NewTable(n, []string{art.name})
	if err != nil {
		return nil, err
	}

	initCol, err := art.initial.Column(art.name)
	if err != nil {
		return nil, err
	}

	done := make([]bool, n)
	for i := 0; i < n; i++ {
		if initCol.Mask[i] {
			if err := out.Set(art.name, i, initCol.Values[i]); err != nil {
				return nil, err
			}
			done[i] = true
		}
	}

	outCol, err := out.Column(art.name)
	if err != nil {
		return nil, err
	}

	for _, i := range art.path {
		if done[i] {
			continue
		}

		value, err := drawCell(rng, art, outCol, done, i)
		if err != nil {
			return nil, err
		}
		if err := out.Set(art.name, i, value); err != nil {
			return nil, err
		}
		done[i] = true
	}

	return out, nil
}

// drawCell implements spec §4.5 steps 1-4 for a single index i: collect
// up to MaxNeigh already-written neighbors, fall back to the prior if
// fewer than MinNeigh are available or the local fit is singular,
// otherwise draw from the local Kriging posterior at i's centroid.
func drawCell(rng *rand.Rand, art *Artifact, outCol *attr.Column, done []bool, i int) (float64, error) {
	center := art.dom.Centroid(i)
	nbrs, err := art.index.Search(center, art.maxNeigh, done, art.ball)
	if err != nil {
		return 0, err
	}
	if len(nbrs) < art.minNeigh {
		return art.model.Prior(rng), nil
	}

	localDom, err := spatial.NewView(art.dom, nbrs)
	if err != nil {
		return 0, err
	}
	localValues := make([]float64, len(nbrs))
	for k, idx := range nbrs {
		localValues[k] = outCol.Values[idx]
	}

	if value, ok := art.model.FitPredict(rng, localDom, localValues, center); ok {
		return value, nil
	}
	return art.model.Prior(rng), nil
}
