// SPDX-License-Identifier: MIT
//
// adjacency.go — a fixed k-nearest-neighbor adjacency graph over a
// domain's centroids, the substrate the dilation and source paths expand
// over in place of explicit graph edges.

package seq

import (
	"github.com/geostoch/fieldsim/neighbor"
	"github.com/geostoch/fieldsim/spatial"
)

type adjacency struct {
	edges [][]int
}

func newAdjacency(dom spatial.Domain) (*adjacency, error) {
	n := dom.ElementCount()
	k := dilationAdjacencyK
	if k > n-1 {
		k = n - 1
	}

	edges := make([][]int, n)
	if k <= 0 {
		return &adjacency{edges: edges}, nil
	}

	idx, err := neighbor.NewIndex(dom)
	if err != nil {
		return nil, err
	}

	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}

	for i := 0; i < n; i++ {
		mask[i] = false
		nbrs, err := idx.Search(dom.Centroid(i), k, mask, nil)
		if err != nil {
			return nil, err
		}
		edges[i] = nbrs
		mask[i] = true
	}

	return &adjacency{edges: edges}, nil
}

func (a *adjacency) neighborsOf(i int) []int { return a.edges[i] }
