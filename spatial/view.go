// SPDX-License-Identifier: MIT
//
// View — non-mutating domain restriction (grid/point-set subsetting).
// Determinism: preserves parent identity and the exact index subset; no
// reordering beyond what the caller passes in. Mirrors the teacher's
// core.InducedSubgraph contract (output remembers enough to recover the
// exact input it was built from) generalized from graph vertices to
// domain element indices.

package spatial

// View restricts a parent Domain to a subset of element indices. The
// original Domain is never mutated; Parent and ParentIndices always
// reproduce the arguments View was built from.
type View struct {
	parent  Domain
	indices []int
}

// NewView restricts parent to the given indices (in the given order).
// Returns ErrNilParent if parent is nil, ErrEmptyView if indices is empty,
// or ErrIndexOutOfRange if any index falls outside parent's element range.
func NewView(parent Domain, indices []int) (*View, error) {
	if parent == nil {
		return nil, ErrNilParent
	}
	if len(indices) == 0 {
		return nil, ErrEmptyView
	}
	n := parent.ElementCount()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, ErrIndexOutOfRange
		}
	}
	idxCopy := append([]int(nil), indices...)
	return &View{parent: parent, indices: idxCopy}, nil
}

// ElementCount implements Domain.
func (v *View) ElementCount() int { return len(v.indices) }

// Dims implements Domain.
func (v *View) Dims() int { return v.parent.Dims() }

// Centroid implements Domain.
func (v *View) Centroid(i int) Point { return v.parent.Centroid(v.indices[i]) }

// Parent returns the domain this view was built from.
func Parent(v *View) Domain { return v.parent }

// ParentIndices returns the index subset this view exposes into Parent(v),
// in view-local order (ParentIndices(v)[i] is the parent index of
// v.Centroid(i)).
func ParentIndices(v *View) []int { return append([]int(nil), v.indices...) }
