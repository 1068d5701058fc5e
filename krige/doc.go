// Package krige implements ordinary Kriging: a linear-optimal spatial
// predictor giving the conditional mean and variance at a target point
// from a fixed set of neighboring values, fit once per neighborhood and
// queried against any number of target points.
package krige
