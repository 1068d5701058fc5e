// SPDX-License-Identifier: MIT
//
// path_shuffle.go — random-shuffle path: a Fisher-Yates permutation of the
// raster order, drawn once from the preprocessing PRNG so every
// realization drawn from the same artifact shares the same order (the
// ordering contract: fixed path + fixed PRNG -> deterministic draws).

package seq

import "github.com/geostoch/fieldsim/spatial"

func shufflePath(dom spatial.Domain, rng randSource) []int {
	out := rasterPath(dom)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
