// SPDX-License-Identifier: MIT
//
// realize.go — Single: white-noise spectral draw, empirical-variance
// rescale, and (when conditioning data is present) Kriging residual
// substitution, restricted to the artifact's active grid indices
// (spec §4.6 steps 1-6).

package fft

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/krige"
	"github.com/geostoch/fieldsim/prng"
)

// Single draws one realization from art using rng.
func Single(rng *rand.Rand, art *Artifact) (*attr.Table, error) {
	n := art.grid.ElementCount()

	noise := prng.StdNormalVector(rng, n)
	noiseC := make([]complex128, n)
	for i, v := range noise {
		noiseC[i] = complex(v, 0)
	}
	noiseFFT := transformND(noiseC, art.shape, false)

	p := make([]complex128, n)
	for i := range p {
		angle := cmplx.Phase(noiseFFT[i])
		p[i] = complex(art.f[i]*math.Cos(angle), art.f[i]*math.Sin(angle))
	}
	zComplex := transformND(p, art.shape, true)

	z := make([]float64, n)
	for i, c := range zComplex {
		z[i] = real(c)
	}
	rescaleToSill(z, art.fn.Sill())
	for i := range z {
		z[i] += art.mean
	}

	if art.zbar != nil {
		if err := substituteResidual(art, z); err != nil {
			return nil, err
		}
	}

	indices := art.activeIndices()
	out, err := attr.NewTable(len(indices), []string{art.name})
	if err != nil {
		return nil, err
	}
	for local, gi := range indices {
		if err := out.Set(art.name, local, z[gi]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// rescaleToSill shifts and scales z in place so its empirical mean is 0
// and its empirical variance equals sill (spec §4.6 step 3).
func rescaleToSill(z []float64, sill float64) {
	n := float64(len(z))
	var mean float64
	for _, v := range z {
		mean += v
	}
	mean /= n

	var variance float64
	for _, v := range z {
		d := v - mean
		variance += d * d
	}
	variance /= n
	if variance <= 0 {
		return
	}

	scale := math.Sqrt(sill / variance)
	for i := range z {
		z[i] = (z[i] - mean) * scale
	}
}

// substituteResidual implements spec §4.6 step 6: fits Kriging to z's
// values at the cells nearest each datum (the "unconditional" field at
// the data locations), predicts that unconditional field over the whole
// grid, and replaces z with zbar + (z - zbarUnconditional).
func substituteResidual(art *Artifact, z []float64) error {
	mirrorValues := make([]float64, len(art.mirrorIdx))
	for row, gi := range art.mirrorIdx {
		mirrorValues[row] = z[gi]
	}

	predUnconditional, err := krige.Fit(art.fn, art.condLocations, mirrorValues)
	if err != nil {
		return err
	}

	for i := range z {
		mU, _, err := predUnconditional.Predict(art.grid.Centroid(i))
		if err != nil {
			return err
		}
		z[i] = art.zbar[i] + (z[i] - mU)
	}
	return nil
}
