// SPDX-License-Identifier: MIT

package spatial

import "math"

// Point is a located vector in n-dimensional space. Coordinate slices are
// owned by whoever returns them; callers must not mutate a Point obtained
// from a Domain.
type Point struct {
	Coords []float64
}

// Dim returns the dimensionality of the point.
func (p Point) Dim() int { return len(p.Coords) }

// Distance returns the Euclidean distance between p and q.
// Complexity: O(d) where d = p.Dim().
func (p Point) Distance(q Point) float64 {
	var sum float64
	for i := range p.Coords {
		d := p.Coords[i] - q.Coords[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Clone returns a deep copy of p.
func (p Point) Clone() Point {
	c := make([]float64, len(p.Coords))
	copy(c, p.Coords)
	return Point{Coords: c}
}

// Domain is an ordered sequence of elements (cells or point geometries)
// embedded in n-dimensional space, each with a centroid. Grid, PointSet,
// and View all implement Domain.
type Domain interface {
	// ElementCount returns the number of elements in the domain.
	// Invariant: ElementCount() > 0 for any validly constructed Domain.
	ElementCount() int

	// Centroid returns the centroid of element i.
	// i must lie in [0, ElementCount()): PointSet and View panic outside that
	// range, while Grid does not check it and returns a wrapped cell's
	// centroid. Callers bounds-check via ElementCount() first, matching the
	// teacher's At(i,j) convention elsewhere of returning errors only at
	// public entry points.
	Centroid(i int) Point

	// Dims returns the spatial dimensionality (length of each centroid).
	Dims() int
}

// BoundingBox is the axis-aligned bounding box of a Domain's centroids.
type BoundingBox struct {
	Min []float64
	Max []float64
}

// Extent returns max(Max[k]-Min[k]) over all axes k — the "max-side" extent
// used by scale.Factor and the FFT engine's applicability check.
func (b BoundingBox) Extent() float64 {
	var ext float64
	for k := range b.Min {
		if d := b.Max[k] - b.Min[k]; d > ext {
			ext = d
		}
	}
	return ext
}

// MinSide returns min(Max[k]-Min[k]) over all axes k — used by the
// orchestrator's FFT-applicability rule (range(func) <= min_side(bbox)/3).
func (b BoundingBox) MinSide() float64 {
	if len(b.Min) == 0 {
		return 0
	}
	minSide := math.Inf(1)
	for k := range b.Min {
		if d := b.Max[k] - b.Min[k]; d < minSide {
			minSide = d
		}
	}
	return minSide
}

// ComputeBoundingBox scans every centroid of d and returns its bounding box.
// Complexity: O(n*dims).
func ComputeBoundingBox(d Domain) (BoundingBox, error) {
	n := d.ElementCount()
	if n <= 0 {
		return BoundingBox{}, ErrEmptyDomain
	}
	dims := d.Dims()
	minV := make([]float64, dims)
	maxV := make([]float64, dims)
	first := d.Centroid(0)
	copy(minV, first.Coords)
	copy(maxV, first.Coords)
	for i := 1; i < n; i++ {
		c := d.Centroid(i)
		for k := 0; k < dims; k++ {
			if c.Coords[k] < minV[k] {
				minV[k] = c.Coords[k]
			}
			if c.Coords[k] > maxV[k] {
				maxV[k] = c.Coords[k]
			}
		}
	}
	return BoundingBox{Min: minV, Max: maxV}, nil
}
