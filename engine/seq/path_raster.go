// SPDX-License-Identifier: MIT
//
// path_raster.go — raster-linear path: the domain's own element order.

package seq

import "github.com/geostoch/fieldsim/spatial"

func rasterPath(dom spatial.Domain) []int {
	n := dom.ElementCount()
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
