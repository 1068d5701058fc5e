// Package fft implements FFT-MA: Gaussian field simulation via spectral
// filtering of white noise on a regular grid, with Kriging-residual
// conditioning (spec §4.6).
//
// Preprocess evaluates the covariance between a reference cell and every
// other grid cell, takes its discrete Fourier transform, and stores the
// square root of its magnitude spectrum — the spectral filter every
// realization convolves a fresh white-noise field through. When
// conditioning data is present, Preprocess additionally fits a Kriging
// field over the whole grid once; Single substitutes the unconditional
// spectral draw's residual at each cell for the Kriging field's, the
// classical FFT-MA conditioning trick.
//
// Applicability: the domain (or its parent, for a view) must be a
// spatial.Grid, and the covariance function must be stationary and
// univariate. Correlation lengths approaching a third of the grid's
// shortest side produce visible periodic tiling artifacts — the
// orchestrator's method auto-selection avoids FFT in that regime.
package fft
