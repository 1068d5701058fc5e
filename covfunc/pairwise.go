// SPDX-License-Identifier: MIT
//
// pairwise.go — dense covariance-block evaluation between domain element
// centroids, the building block for the LU engine's C_DD/C_DS/C_SS blocks
// (spec §4.4) and the FFT engine's reference-row evaluation (spec §4.6).

package covfunc

import (
	"fmt"

	"github.com/geostoch/fieldsim/matrix"
	"github.com/geostoch/fieldsim/spatial"
)

// Pairwise evaluates the marginal (variate 0) covariance between every
// centroid of a and every centroid of b, returning a dense
// a.ElementCount() x b.ElementCount() matrix. When a and b are the same
// domain this yields the familiar symmetric covariance block.
//
// Complexity: O(na*nb*dims).
func Pairwise(f *Function, a, b spatial.Domain) (matrix.Matrix, error) {
	return PairwiseAt(f, 0, a, b)
}

// PairwiseAt is Pairwise for variate j of a multivariate Function.
func PairwiseAt(f *Function, j int, a, b spatial.Domain) (matrix.Matrix, error) {
	if j < 0 || j >= f.VariateCount() {
		return nil, ErrVariateCount
	}

	na, nb := a.ElementCount(), b.ElementCount()
	out, err := matrix.NewDense(na, nb)
	if err != nil {
		return nil, fmt.Errorf("covfunc: Pairwise: %w", err)
	}

	for i := 0; i < na; i++ {
		ci := a.Centroid(i)
		for k := 0; k < nb; k++ {
			ck := b.Centroid(k)
			h := ci.Distance(ck)
			_ = out.Set(i, k, f.CovarianceAt(j, h))
		}
	}

	return out, nil
}

// PairwiseVector evaluates covariance between a single reference point and
// every centroid of dom, returning a length-dom.ElementCount() slice — the
// shape the FFT engine needs for its reference-row evaluation (spec §4.6
// step 2), avoiding an O(n) allocation of a 1xN matrix.
func PairwiseVector(f *Function, ref spatial.Point, dom spatial.Domain) []float64 {
	n := dom.ElementCount()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = f.Covariance(ref.Distance(dom.Centroid(i)))
	}
	return out
}
