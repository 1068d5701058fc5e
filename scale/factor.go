// SPDX-License-Identifier: MIT
//
// factor.go — unit-extent scale factor derivation and application.

package scale

import (
	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/spatial"
)

// Factor computes α = 1 / max(extent(domain), extent(data), range(func)).
// data may be nil when no conditioning data is present. Returns 1 if every
// candidate extent is zero (degenerate single-point domain), to avoid
// dividing by zero.
func Factor(dom spatial.Domain, data spatial.Domain, fn *covfunc.Function) (float64, error) {
	domBox, err := spatial.ComputeBoundingBox(dom)
	if err != nil {
		return 0, err
	}
	maxExtent := domBox.Extent()

	if data != nil {
		dataBox, err := spatial.ComputeBoundingBox(data)
		if err != nil {
			return 0, err
		}
		if e := dataBox.Extent(); e > maxExtent {
			maxExtent = e
		}
	}

	if fn != nil {
		if r := fn.Range(); r > maxExtent {
			maxExtent = r
		}
	}

	if maxExtent == 0 {
		return 1, nil
	}
	return 1 / maxExtent, nil
}

// Point returns a copy of p with its coordinates scaled by alpha; p itself
// is left unchanged.
func Point(p spatial.Point, alpha float64) spatial.Point {
	out := p.Clone()
	for i := range out.Coords {
		out.Coords[i] *= alpha
	}
	return out
}

// PointSet returns a new PointSet with every centroid of dom scaled by
// alpha. dom's own elements are left untouched.
func PointSet(dom spatial.Domain, alpha float64) (*spatial.PointSet, error) {
	n := dom.ElementCount()
	pts := make([]spatial.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point(dom.Centroid(i), alpha)
	}
	return spatial.NewPointSet(pts)
}

// Function returns fn rescaled to the same alpha frame via fn.Scale, so
// that range and distances agree with the scaled domain.
func Function(fn *covfunc.Function, alpha float64) *covfunc.Function {
	return fn.Scale(alpha)
}
