// SPDX-License-Identifier: MIT
//
// point.go — indexed point and slice types satisfying gonum's
// kdtree.Comparable/kdtree.Interface, generalizing the 3D-only
// Point3D/Points3D pair to the domain's actual dimensionality.

package neighbor

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// indexedPoint is a domain element's centroid plus its original domain
// index, carried through kd-tree construction and search.
type indexedPoint struct {
	coords []float64
	index  int
}

// Compare implements kdtree.Comparable.
func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.coords[int(d)] - q.coords[int(d)]
}

// Dims implements kdtree.Comparable.
func (p indexedPoint) Dims() int { return len(p.coords) }

// Distance implements kdtree.Comparable, returning squared Euclidean
// distance (gonum's own convention; consistent within one query).
func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	var sum float64
	for i := range p.coords {
		d := p.coords[i] - q.coords[i]
		sum += d * d
	}
	return sum
}

// pointList is a slice of indexedPoint satisfying kdtree.Interface.
type pointList []indexedPoint

func (p pointList) Index(i int) kdtree.Comparable          { return p[i] }
func (p pointList) Len() int                               { return len(p) }
func (p pointList) Slice(start, end int) kdtree.Interface  { return p[start:end] }

// Pivot implements kdtree.Interface, partitioning around the median of a
// random sample along dimension d.
func (p pointList) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(pointPlane{pointList: p, Dim: d}, kdtree.MedianOfRandoms(pointPlane{pointList: p, Dim: d}, 100))
}

// pointPlane projects pointList onto one axis for Pivot's partitioning.
type pointPlane struct {
	pointList
	kdtree.Dim
}

func (p pointPlane) Less(i, j int) bool {
	return p.pointList[i].coords[int(p.Dim)] < p.pointList[j].coords[int(p.Dim)]
}

func (p pointPlane) Swap(i, j int) {
	p.pointList[i], p.pointList[j] = p.pointList[j], p.pointList[i]
}

func (p pointPlane) Slice(start, end int) kdtree.SortSlicer {
	return pointPlane{pointList: p.pointList[start:end], Dim: p.Dim}
}

var _ sort.Interface = pointPlane{}
