// Package scale computes the unit-extent scaling factor applied uniformly
// to a domain, its conditioning data, and its covariance function before
// any engine builds a conditioning matrix, avoiding the ill-conditioning
// that large absolute coordinates cause in Cholesky factorization.
package scale
