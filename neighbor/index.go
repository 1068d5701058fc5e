// SPDX-License-Identifier: MIT
//
// index.go — Index: immutable k-nearest/metric-ball spatial index over a
// spatial.Domain, built once and queried many times with a fresh
// availability mask per call (the sequential engine's per-cell hot path).

package neighbor

import (
	"sort"

	"github.com/geostoch/fieldsim/spatial"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// MetricBall restricts a search to elements within Radius of the query
// point, measured by Metric (defaults to Euclidean when nil).
type MetricBall struct {
	Radius float64
	Metric func(a, b spatial.Point) float64
}

func (b MetricBall) distance(a, q spatial.Point) float64 {
	if b.Metric != nil {
		return b.Metric(a, q)
	}
	return a.Distance(q)
}

// Index is an immutable k-nearest/metric-ball spatial index over a
// spatial.Domain's centroids.
type Index struct {
	dom  spatial.Domain
	tree *kdtree.Tree
	n    int
}

// NewIndex builds an Index over every element of dom.
// Complexity: O(n log n).
func NewIndex(dom spatial.Domain) (*Index, error) {
	n := dom.ElementCount()
	if n <= 0 {
		return nil, ErrEmptyDomain
	}

	pts := make(pointList, n)
	for i := 0; i < n; i++ {
		pts[i] = indexedPoint{coords: append([]float64(nil), dom.Centroid(i).Coords...), index: i}
	}

	return &Index{dom: dom, tree: kdtree.New(pts, true), n: n}, nil
}

// candidate is one scored search result.
type candidate struct {
	index int
	dist  float64
}

// Search returns up to k indices of unmasked domain elements nearest to
// point, ordered by ascending distance with ties broken by ascending
// index. mask must have one entry per domain element; mask[i] == false
// means element i is unavailable. ball, if non-nil, additionally excludes
// elements farther than ball.Radius from point under ball's metric.
//
// Complexity: O(log n) expected per doubling round of the kd-tree's
// nearest-set search, amortized over the overfetch-and-filter loop below.
func (idx *Index) Search(point spatial.Point, k int, mask []bool, ball *MetricBall) ([]int, error) {
	if len(mask) != idx.n {
		return nil, ErrMaskLengthMismatch
	}
	if k <= 0 {
		return nil, nil
	}

	query := indexedPoint{coords: point.Coords}

	// The kd-tree has no notion of mask/ball, so overfetch candidates and
	// filter client-side, doubling the fetch size until enough unmasked,
	// in-ball candidates are found or the whole domain has been scanned.
	fetch := k
	var kept []candidate
	for {
		if fetch > idx.n {
			fetch = idx.n
		}

		keeper := kdtree.NewNKeeper(fetch)
		idx.tree.NearestSet(keeper, query)

		kept = kept[:0]
		for _, item := range keeper.Heap {
			if item.Comparable == nil {
				continue
			}
			p := item.Comparable.(indexedPoint)
			if !mask[p.index] {
				continue
			}
			centroid := idx.dom.Centroid(p.index)
			if ball != nil && ball.distance(centroid, point) > ball.Radius {
				continue
			}
			kept = append(kept, candidate{index: p.index, dist: point.Distance(centroid)})
		}

		if len(kept) >= k || fetch >= idx.n {
			break
		}
		fetch *= 2
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].dist != kept[j].dist {
			return kept[i].dist < kept[j].dist
		}
		return kept[i].index < kept[j].index
	})

	if len(kept) > k {
		kept = kept[:k]
	}

	out := make([]int, len(kept))
	for i, c := range kept {
		out[i] = c.index
	}
	return out, nil
}
