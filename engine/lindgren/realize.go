// SPDX-License-Identifier: MIT
//
// realize.go — Single: one realization draw from a preprocessed Artifact,
// consuming a caller-supplied PRNG stream.

package lindgren

import (
	"math/rand/v2"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/matrix/ops"
	"github.com/geostoch/fieldsim/prng"
)

// Single draws one realization from art using rng, returning a
// single-column attr.Table. Every cell is written exactly once.
func Single(rng *rand.Rand, art *Artifact) (*attr.Table, error) {
	n := art.mesh.ElementCount()
	out, err := attr.NewTable(n, []string{art.name})
	if err != nil {
		return nil, err
	}

	w := prng.StdNormalVector(rng, len(art.indicesS))
	x, err := ops.SolveUpper(art.lSS, w)
	if err != nil {
		return nil, err
	}

	for i, idx := range art.indicesS {
		v := x[i]
		if art.conditional {
			v += art.mS[i]
		}
		if err := out.Set(art.name, idx, v); err != nil {
			return nil, err
		}
	}
	for i, idx := range art.indicesD {
		if err := out.Set(art.name, idx, art.zD[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
