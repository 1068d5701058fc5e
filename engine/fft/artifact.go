// SPDX-License-Identifier: MIT
//
// artifact.go — Preprocess: reference-cell covariance evaluation, its
// magnitude spectrum, and (when conditioning data is present) a whole-grid
// Kriging field and the grid cells nearest each datum, shared read-only
// across every realization's spectral draw (spec §4.6 steps 1-4).

package fft

import (
	"math"
	"math/cmplx"

	"github.com/geostoch/fieldsim/binding"
	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/krige"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/spatial"
)

// Artifact is the FFT engine's immutable preprocessed state.
type Artifact struct {
	grid *spatial.Grid
	view *spatial.View // nil unless dom is a grid view
	shape []int
	mean  float64
	fn    *covfunc.Function
	name  string
	f     []float64 // sqrt(|fft(fftshift(C))|), DC bin zeroed

	// Conditioning state, nil/empty when unconditional.
	zbar          []float64 // whole-grid Kriging conditional mean field
	mirrorIdx     []int     // grid index nearest each datum location
	condLocations spatial.Domain
}

// Applicable reports whether dom (or its grid parent, for a view) is a
// spatial.Grid and fn is stationary and univariate.
func Applicable(dom spatial.Domain, fn *covfunc.Function) bool {
	return gridOf(dom) != nil && fn.IsStationary() && fn.VariateCount() == 1
}

func gridOf(dom spatial.Domain) *spatial.Grid {
	switch d := dom.(type) {
	case *spatial.Grid:
		return d
	case *spatial.View:
		if g, ok := spatial.Parent(d).(*spatial.Grid); ok {
			return g
		}
	}
	return nil
}

// Preprocess builds an FFT artifact for gp over dom, optionally
// conditioned on data. data is not bound onto the grid: its column named
// after the process's output variable is used directly in a whole-grid
// Kriging fit.
func Preprocess(gp *process.GaussianProcess, dom spatial.Domain, data *binding.DataSet) (*Artifact, error) {
	if gp.Func.VariateCount() != 1 || len(gp.Mean) != 1 {
		return nil, ErrShapeMismatch
	}
	fn := gp.Func
	if !fn.IsStationary() {
		return nil, ErrNotStationary
	}
	grid := gridOf(dom)
	if grid == nil {
		return nil, ErrNotApplicable
	}

	shape := grid.Shape()
	n := grid.ElementCount()
	ref := grid.Centroid(grid.ReferenceCell())
	cVec := covfunc.PairwiseVector(fn, ref, grid)

	spectral := make([]complex128, n)
	for i, v := range cVec {
		spectral[i] = complex(v, 0)
	}
	shifted := fftshift(spectral, shape)
	coeffs := transformND(shifted, shape, false)

	f := make([]float64, n)
	for i, c := range coeffs {
		f[i] = math.Sqrt(cmplx.Abs(c))
	}
	f[0] = 0 // subtract the constant mean (DC bin)

	art := &Artifact{
		grid: grid, view: viewOf(dom), shape: shape,
		mean: gp.Mean[0], fn: fn, name: gp.OutputSchema()[0], f: f,
	}

	if data != nil {
		if err := art.bindConditioning(data); err != nil {
			return nil, err
		}
	}

	return art, nil
}

func viewOf(dom spatial.Domain) *spatial.View {
	if v, ok := dom.(*spatial.View); ok {
		return v
	}
	return nil
}

func (a *Artifact) bindConditioning(data *binding.DataSet) error {
	col, err := data.Values.Column(a.name)
	if err != nil {
		return err
	}

	n := a.grid.ElementCount()
	pred, err := krige.Fit(a.fn, data.Locations, col.Values)
	if err != nil {
		return err
	}

	zbar := make([]float64, n)
	for i := 0; i < n; i++ {
		m, _, err := pred.Predict(a.grid.Centroid(i))
		if err != nil {
			return err
		}
		zbar[i] = m
	}

	nData := data.Locations.ElementCount()
	mirror := make([]int, nData)
	for row := 0; row < nData; row++ {
		mirror[row] = nearestGridIndex(a.grid, data.Locations.Centroid(row))
	}

	a.zbar = zbar
	a.mirrorIdx = mirror
	a.condLocations = data.Locations
	return nil
}

// nearestGridIndex brute-force scans grid for the cell centroid nearest p,
// breaking ties by lowest index (matches binding.NearestInit's rule).
func nearestGridIndex(grid *spatial.Grid, p spatial.Point) int {
	n := grid.ElementCount()
	best, bestDist := 0, grid.Centroid(0).Distance(p)
	for i := 1; i < n; i++ {
		d := grid.Centroid(i).Distance(p)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// activeIndices returns the grid indices this artifact's realizations
// should be restricted to: every grid cell, or the view's subset.
func (a *Artifact) activeIndices() []int {
	if a.view == nil {
		n := a.grid.ElementCount()
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	return spatial.ParentIndices(a.view)
}
