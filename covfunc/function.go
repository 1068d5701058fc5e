// SPDX-License-Identifier: MIT
//
// function.go — covfunc.Function: a symmetric, positive-semidefinite
// kernel family plus its sill/range/nugget parameterization and (for
// multivariate processes) per-variate marginal sills and cross-sills.

package covfunc

import (
	"fmt"
	"math"

	"github.com/geostoch/fieldsim/matrix"
)

// Deterministic defaults.
const (
	// DefaultNugget is the discontinuity at h=0 when not otherwise set.
	DefaultNugget = 0.0
)

// Function is a geospatial covariance/variogram function: an isotropic,
// stationary kernel evaluated between point pairs.
//
// Sill is carried as a matrix so that a single type serves both univariate
// (1x1) and multivariate processes; SillMatrix()'s (j,j) entry is the
// marginal sill for variate j and off-diagonal entries carry cross-sills
// used to derive bivariate co-simulation's correlation rho.
type Function struct {
	shape  Shape
	form   Form
	rang   float64
	nugget float64
	sill   matrix.Matrix // variateCount x variateCount
	rho    *float64      // explicit override for Rho(); nil derives from sill
}

// Option configures Function construction.
type Option func(*Function)

// WithNugget sets the discontinuity at h=0. Panics if nugget < 0
// (programmer error, matching the teacher's WithEpsilon panic-on-invalid
// convention for functional options).
func WithNugget(nugget float64) Option {
	if nugget < 0 {
		panic("covfunc: WithNugget: nugget must be >= 0")
	}
	return func(f *Function) { f.nugget = nugget }
}

// WithForm overrides the default CovarianceForm.
func WithForm(form Form) Option {
	return func(f *Function) { f.form = form }
}

// WithSillMatrix overrides the default 1x1 sill matrix [[sill]] with a
// caller-supplied multivariate sill matrix (must be square; validated by
// the constructor, not this option, since Options run before validation).
func WithSillMatrix(sill matrix.Matrix) Option {
	return func(f *Function) { f.sill = sill }
}

// WithRho sets an explicit bivariate cross-correlation, overriding the value
// Rho() would otherwise derive from the sill matrix's off-diagonal. Per
// spec.md §9: when a snapshot supplies both an explicit correlation and a
// multivariate sill, the explicit parameter wins.
func WithRho(rho float64) Option {
	return func(f *Function) { f.rho = &rho }
}

// newFunction is the shared constructor body for the three shapes.
func newFunction(shape Shape, rangeParam, sill float64, opts ...Option) (*Function, error) {
	if rangeParam <= 0 {
		return nil, ErrInvalidRange
	}
	if sill <= 0 {
		return nil, ErrInvalidSill
	}

	defaultSill, err := matrix.NewDense(1, 1)
	if err != nil {
		return nil, fmt.Errorf("covfunc: %w", err)
	}
	_ = defaultSill.Set(0, 0, sill)

	f := &Function{
		shape:  shape,
		form:   CovarianceForm,
		rang:   rangeParam,
		nugget: DefaultNugget,
		sill:   defaultSill,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.nugget < 0 {
		return nil, ErrInvalidNugget
	}
	if f.sill.Rows() != f.sill.Cols() {
		return nil, ErrSillMatrixNotSquare
	}

	return f, nil
}

// NewSpherical constructs a (possibly multivariate, via WithSillMatrix)
// spherical covariance/variogram function.
func NewSpherical(rangeParam, sill float64, opts ...Option) (*Function, error) {
	return newFunction(Spherical, rangeParam, sill, opts...)
}

// NewExponential constructs an exponential covariance/variogram function.
func NewExponential(rangeParam, sill float64, opts ...Option) (*Function, error) {
	return newFunction(Exponential, rangeParam, sill, opts...)
}

// NewGaussian constructs a Gaussian covariance/variogram function.
func NewGaussian(rangeParam, sill float64, opts ...Option) (*Function, error) {
	return newFunction(Gaussian, rangeParam, sill, opts...)
}

// Shape returns the structural kernel family.
func (f *Function) Shape() Shape { return f.shape }

// Range returns the range parameter.
func (f *Function) Range() float64 { return f.rang }

// Sill returns the marginal sill of variate 0.
func (f *Function) Sill() float64 {
	v, _ := f.sill.At(0, 0)
	return v
}

// SillAt returns the marginal sill of variate j.
func (f *Function) SillAt(j int) float64 {
	v, _ := f.sill.At(j, j)
	return v
}

// SillMatrix returns the full per-variate sill matrix.
func (f *Function) SillMatrix() matrix.Matrix { return f.sill }

// Nugget returns the discontinuity at h=0.
func (f *Function) Nugget() float64 { return f.nugget }

// IsStationary reports whether the function's statistics are
// translation-invariant. All shapes here are, by construction.
func (f *Function) IsStationary() bool { return true }

// IsSymmetric reports whether C(h) == C(-h). All isotropic shapes here are.
func (f *Function) IsSymmetric() bool { return true }

// IsBanded reports whether the function was declared in covariance form
// (C(0)=sill, C(h->inf)->0), as opposed to variogram form.
func (f *Function) IsBanded() bool { return f.form == CovarianceForm }

// VariateCount returns the number of jointly modeled variables.
func (f *Function) VariateCount() int { return f.sill.Rows() }

// Covariance evaluates C(h) for the marginal (variate 0) at distance h,
// incorporating the nugget discontinuity at h=0.
func (f *Function) Covariance(h float64) float64 {
	if h <= 0 {
		return f.Sill() + f.nugget
	}
	return f.Sill() * structuralCovariance(f.shape, h, f.rang)
}

// CovarianceAt evaluates the marginal covariance for variate j at distance h.
func (f *Function) CovarianceAt(j int, h float64) float64 {
	sillJ := f.SillAt(j)
	if h <= 0 {
		return sillJ + f.nugget
	}
	return sillJ * structuralCovariance(f.shape, h, f.rang)
}

// Variogram evaluates gamma(h) = sill - C(h) for the marginal (variate 0).
func (f *Function) Variogram(h float64) float64 {
	return f.Sill() - f.Covariance(h)
}

// Rho returns the bivariate cross-correlation: the explicit value passed to
// WithRho if one was supplied, otherwise the value implied by the sill
// matrix's off-diagonal (sill[0][1] / sqrt(sill[0][0]*sill[1][1])). Returns
// 0 if the function is univariate (VariateCount() < 2) and no explicit Rho
// was set.
func (f *Function) Rho() float64 {
	if f.rho != nil {
		return *f.rho
	}
	if f.VariateCount() < 2 {
		return 0
	}
	cross, _ := f.sill.At(0, 1)
	s0, s1 := f.SillAt(0), f.SillAt(1)
	denom := s0 * s1
	if denom <= 0 {
		return 0
	}
	return cross / math.Sqrt(denom)
}

// Scale returns a copy of f with Range multiplied by alpha — used by
// scale.Factor to move into the unit-extent working frame (spec §4.7).
// The sill matrix is left untouched: sill is a variance, invariant under
// the coordinate rescaling that only affects distances.
func (f *Function) Scale(alpha float64) *Function {
	return &Function{
		shape:  f.shape,
		form:   f.form,
		rang:   f.rang * alpha,
		nugget: f.nugget,
		sill:   f.sill,
		rho:    f.rho,
	}
}
