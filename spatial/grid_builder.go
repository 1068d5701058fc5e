// SPDX-License-Identifier: MIT
//
// grid_builder.go — NewCartesianGrid constructor with deterministic
// defaults and functional options, in the shape of the teacher's
// builder.Grid/builderConfig: validate fail-fast, no partial
// construction, stable defaults documented as named constants.

package spatial

// Deterministic defaults for CartesianGrid construction.
const (
	defaultOrigin = 0.0 // per-axis origin when unset
	defaultStep   = 1.0 // per-axis spacing when unset
)

// gridConfig aggregates CartesianGrid construction knobs. Passed by value
// to NewCartesianGrid; never exposed outside this file.
type gridConfig struct {
	origin []float64
	step   []float64
}

// GridOption configures NewCartesianGrid.
type GridOption func(*gridConfig)

// WithOrigin sets the grid's per-axis origin (length must equal len(shape)).
func WithOrigin(origin []float64) GridOption {
	return func(c *gridConfig) { c.origin = append([]float64(nil), origin...) }
}

// WithStep sets the grid's per-axis cell spacing (length must equal len(shape)).
func WithStep(step []float64) GridOption {
	return func(c *gridConfig) { c.step = append([]float64(nil), step...) }
}

// NewCartesianGrid builds a regular lattice domain over shape, defaulting
// to origin 0 and step 1 on every axis unless overridden. Returns
// ErrBadShape / ErrDimMismatch per NewGrid's contract.
func NewCartesianGrid(shape []int, opts ...GridOption) (*Grid, error) {
	dims := len(shape)
	cfg := gridConfig{
		origin: filled(dims, defaultOrigin),
		step:   filled(dims, defaultStep),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return NewGrid(shape, cfg.origin, cfg.step)
}

// filled returns a slice of length n with every entry set to v.
func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
