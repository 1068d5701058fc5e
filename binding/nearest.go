// SPDX-License-Identifier: MIT
//
// nearest.go — NearestInit: for each data row, locate the nearest domain
// element by brute-force scan (data sets bound this way are expected to be
// small relative to the simulation domain; the neighbor package's indexed
// search is reserved for the SEQ engine's per-cell hot path, not one-time
// binding).

package binding

import (
	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/spatial"
)

// NearestInit binds each data row onto its nearest domain element,
// breaking ties by lowest domain index.
type NearestInit struct{}

// Bind implements Method.
func (NearestInit) Bind(dom spatial.Domain, data DataSet, names []string) (*attr.Table, error) {
	real, err := attr.NewTable(dom.ElementCount(), names)
	if err != nil {
		return nil, err
	}

	nRows := data.Locations.ElementCount()
	nDom := dom.ElementCount()
	for row := 0; row < nRows; row++ {
		center := data.Locations.Centroid(row)

		// Find the nearest domain element; ties broken by lowest index via
		// strict "<" (first-seen minimum wins under ascending scan order).
		best := -1
		bestDist := 0.0
		for j := 0; j < nDom; j++ {
			d := center.Distance(dom.Centroid(j))
			if best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}

		for _, name := range names {
			col, err := data.Values.Column(name)
			if err != nil {
				continue // variable not present in the data set at all
			}
			if !col.Mask[row] {
				continue // missing value: skip, mask bit left false
			}
			_ = real.Set(name, best, col.Values[row])
		}
	}

	return real, nil
}
