// SPDX-License-Identifier: MIT
//
// explicit.go — ExplicitInit: caller-supplied index correspondence between
// a data set's rows and domain elements, for callers that already know the
// mapping (e.g. well logs pre-registered to a grid) and want to skip the
// nearest-element search entirely.

package binding

import (
	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/spatial"
)

// ExplicitInit binds data row SourceIndices[i] onto domain element
// DestIndices[i], for each i. If SourceIndices is nil, it defaults to
// 0..len(DestIndices)-1 (the data set's rows are taken in order).
type ExplicitInit struct {
	SourceIndices []int
	DestIndices   []int
}

// Bind implements Method.
func (e ExplicitInit) Bind(dom spatial.Domain, data DataSet, names []string) (*attr.Table, error) {
	dest := e.DestIndices
	src := e.SourceIndices
	if src == nil {
		src = make([]int, len(dest))
		for i := range src {
			src[i] = i
		}
	}
	if len(src) != len(dest) {
		return nil, ErrLengthMismatch
	}

	real, err := attr.NewTable(dom.ElementCount(), names)
	if err != nil {
		return nil, err
	}

	nDom := dom.ElementCount()
	nData := data.Locations.ElementCount()
	for i, s := range src {
		d := dest[i]
		if d < 0 || d >= nDom {
			return nil, ErrIndexOutOfRange
		}
		if s < 0 || s >= nData {
			return nil, ErrIndexOutOfRange
		}

		for _, name := range names {
			col, err := data.Values.Column(name)
			if err != nil {
				continue // variable not present in the data set at all
			}
			if !col.Mask[s] {
				continue // missing value: skip, mask bit left false
			}
			_ = real.Set(name, d, col.Values[s])
		}
	}

	return real, nil
}
