// Package covfunc implements the geospatial-function library the engines
// consume: symmetric, positive-semidefinite kernel families evaluated
// between points, in both covariance form (C(h), banded: C(0)=sill,
// C(h->inf)->0) and variogram form (gamma(h) = sill - C(h)).
//
// Three structural shapes are provided — Spherical, Exponential, and
// Gaussian — following the same nugget/range/sill parameterization and
// formulas as a geostatistics kriging predictor; a Function additionally
// carries a per-variate sill matrix so that the same type serves both
// univariate and bivariate (cross-correlated) processes.
package covfunc
