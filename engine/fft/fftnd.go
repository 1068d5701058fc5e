// SPDX-License-Identifier: MIT
//
// fftnd.go — a separable n-dimensional complex FFT/IFFT and fftshift,
// built from gonum's 1D complex FFT applied along each axis in turn
// (the standard row-column algorithm for multi-dimensional transforms).
// Arrays are flat []complex128 in the same row-major order spatial.Grid
// uses for its own linear indexing.

package fft

import "gonum.org/v1/gonum/dsp/fourier"

// stridesOf returns row-major strides for shape: strides[k] is the number
// of flat-index steps between consecutive elements along axis k.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}
	return strides
}

// linesAlong returns the flat start index of every 1D line running along
// axis (every combination of the other axes' coordinates, with axis's own
// coordinate fixed at 0), enumerated in row-major order.
func linesAlong(shape []int, axis int) []int {
	dims := len(shape)
	strides := stridesOf(shape)

	total := 1
	for k, s := range shape {
		if k != axis {
			total *= s
		}
	}

	starts := make([]int, 0, total)
	coords := make([]int, dims)
	for {
		var flat int
		for k := 0; k < dims; k++ {
			flat += coords[k] * strides[k]
		}
		starts = append(starts, flat)

		k := dims - 1
		for k >= 0 {
			if k == axis {
				k--
				continue
			}
			coords[k]++
			if coords[k] < shape[k] {
				break
			}
			coords[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}
	return starts
}

// transformND applies a complex-to-complex DFT (or its inverse, if
// inverse is true) to data of the given shape, via a 1D FFT along every
// axis in turn. data is not mutated; the transformed copy is returned.
//
// Complexity: O(prod(shape) * sum(shape)) — one full pass of 1D FFTs of
// length shape[k] per axis k, over all lines along that axis.
func transformND(data []complex128, shape []int, inverse bool) []complex128 {
	out := append([]complex128(nil), data...)
	strides := stridesOf(shape)

	for axis, n := range shape {
		if n <= 1 {
			continue
		}
		plan := fourier.NewCmplxFFT(n)
		stride := strides[axis]
		line := make([]complex128, n)

		for _, start := range linesAlong(shape, axis) {
			for i := 0; i < n; i++ {
				line[i] = out[start+i*stride]
			}
			var res []complex128
			if inverse {
				res = plan.Sequence(nil, line)
			} else {
				res = plan.Coefficients(nil, line)
			}
			for i := 0; i < n; i++ {
				out[start+i*stride] = res[i]
			}
		}
	}
	return out
}

// fftshift moves every element forward by shape[k]/2 (cyclically) along
// each axis k, so the element at index 0 moves to the array's center and,
// on even-length axes, the reference cell at shape/2 moves to index 0 —
// the conventional pre-transform alignment for a covariance kernel
// evaluated around a reference cell (spec §4.6 step 3).
func fftshift(data []complex128, shape []int) []complex128 {
	dims := len(shape)
	strides := stridesOf(shape)
	out := make([]complex128, len(data))
	coords := make([]int, dims)
	shifted := make([]int, dims)

	for flat := 0; flat < len(data); flat++ {
		rem := flat
		for k := 0; k < dims; k++ {
			coords[k] = rem / strides[k]
			rem %= strides[k]
		}
		for k := 0; k < dims; k++ {
			shifted[k] = (coords[k] + shape[k]/2) % shape[k]
		}
		var newFlat int
		for k := 0; k < dims; k++ {
			newFlat += shifted[k] * strides[k]
		}
		out[newFlat] = data[flat]
	}
	return out
}
