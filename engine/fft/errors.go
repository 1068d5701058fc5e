// SPDX-License-Identifier: MIT
// Package fft: sentinel error set.

package fft

import "errors"

var (
	// ErrNotApplicable indicates the domain (or its parent) is not a
	// spatial.Grid.
	ErrNotApplicable = errors.New("fft: domain is not a grid")

	// ErrNotStationary indicates the covariance function is not stationary.
	ErrNotStationary = errors.New("fft: function must be stationary")

	// ErrShapeMismatch indicates a multivariate process (FFT is
	// univariate-only) or a mean/variate-count disagreement.
	ErrShapeMismatch = errors.New("fft: process must be univariate")
)
