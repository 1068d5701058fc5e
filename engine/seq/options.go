// SPDX-License-Identifier: MIT
//
// options.go — Options: the per-neighborhood knobs BuildPath and the
// realization loop need (spec §4.5 steps 2-3), expressed as a plain
// struct (not the teacher's functional-option idiom) since every field is
// required rather than independently optional.

package seq

import "github.com/geostoch/fieldsim/neighbor"

// Options configures one SEQ preprocess call.
type Options struct {
	// MinNeigh is the minimum informed-neighbor count before falling back
	// to the prior. Clamped to [1, MaxNeigh].
	MinNeigh int
	// MaxNeigh is the maximum neighbor count collected per cell. Clamped
	// to [1, element_count(domain)].
	MaxNeigh int
	// Ball restricts the neighbor search to a metric ball, in addition to
	// the k-nearest cap. Nil means pure k-nearest, unless RangeBall is set.
	Ball *neighbor.MetricBall
	// RangeBall is the ":range" sentinel: when Ball is nil and RangeBall is
	// true, the neighborhood ball radius is the function's own range.
	RangeBall bool
	// Path selects the traversal order.
	Path PathKind
}

// clamp applies spec §4.5 step 3's bounds given the domain's element
// count, returning adjusted (minNeigh, maxNeigh).
func (o Options) clamp(elementCount int) (int, int) {
	maxNeigh := o.MaxNeigh
	if maxNeigh < 1 {
		maxNeigh = 1
	}
	if maxNeigh > elementCount {
		maxNeigh = elementCount
	}
	minNeigh := o.MinNeigh
	if minNeigh < 1 {
		minNeigh = 1
	}
	if minNeigh > maxNeigh {
		minNeigh = maxNeigh
	}
	return minNeigh, maxNeigh
}
