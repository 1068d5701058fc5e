// SPDX-License-Identifier: MIT

package spatial

// PointSet is an arbitrary, unordered-by-construction collection of located
// points — the domain shape used for scattered data. Immutable after
// construction.
type PointSet struct {
	points []Point
	dims   int
}

// NewPointSet constructs a PointSet from pts. Returns ErrEmptyDomain if pts
// is empty, or ErrDimMismatch if point dimensions disagree.
func NewPointSet(pts []Point) (*PointSet, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyDomain
	}
	dims := pts[0].Dim()
	out := make([]Point, len(pts))
	for i, p := range pts {
		if p.Dim() != dims {
			return nil, ErrDimMismatch
		}
		out[i] = p.Clone()
	}
	return &PointSet{points: out, dims: dims}, nil
}

// ElementCount implements Domain.
func (s *PointSet) ElementCount() int { return len(s.points) }

// Dims implements Domain.
func (s *PointSet) Dims() int { return s.dims }

// Centroid implements Domain.
func (s *PointSet) Centroid(i int) Point { return s.points[i] }
