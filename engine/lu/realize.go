// SPDX-License-Identifier: MIT
//
// realize.go — Single: one realization draw from a preprocessed Artifact,
// consuming a caller-supplied PRNG stream.

package lu

import (
	"math"
	"math/rand/v2"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/prng"
)

// Single draws one realization from art using rng, returning an attr.Table
// with one column per output variable. Every cell is written exactly once.
func Single(rng *rand.Rand, art *Artifact) (*attr.Table, error) {
	n := art.domain.ElementCount()
	out, err := attr.NewTable(n, art.names)
	if err != nil {
		return nil, err
	}

	var w1 []float64
	for j, pv := range art.vars {
		var w []float64
		if j == 0 || art.rho == 0 {
			w = prng.StdNormalVector(rng, len(pv.indicesS))
		} else {
			if len(pv.indicesS) != len(w1) {
				return nil, ErrBivariateShapeMismatch
			}
			w2 := prng.StdNormalVector(rng, len(pv.indicesS))
			w = make([]float64, len(pv.indicesS))
			coupling := math.Sqrt(1 - art.rho*art.rho)
			for i := range w {
				w[i] = art.rho*w1[i] + coupling*w2[i]
			}
		}
		if j == 0 {
			w1 = w
		}

		yS, err := matVecLower(pv.lSS, w)
		if err != nil {
			return nil, err
		}

		name := art.names[j]
		for i, idx := range pv.indicesS {
			v := yS[i]
			if pv.conditional {
				v += pv.dS[i]
			} else {
				v += pv.mean
			}
			if err := out.Set(name, idx, v); err != nil {
				return nil, err
			}
		}
		for i, idx := range pv.indicesD {
			if err := out.Set(name, idx, pv.zD[i]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// matVecLower computes L·w for lower-triangular L.
func matVecLower(L matrixAt, w []float64) ([]float64, error) {
	n := L.Rows()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for k := 0; k <= i; k++ {
			v, err := L.At(i, k)
			if err != nil {
				return nil, err
			}
			sum += v * w[k]
		}
		out[i] = sum
	}
	return out, nil
}

// matrixAt is the narrow read-only surface matVecLower needs.
type matrixAt interface {
	Rows() int
	At(i, j int) (float64, error)
}
