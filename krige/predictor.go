// SPDX-License-Identifier: MIT
//
// predictor.go — Predictor: ordinary Kriging fit (normal-equations system
// factorized once via QR) and predict (mean/variance at a target point,
// re-solving only the right-hand side per query).

package krige

import (
	"fmt"

	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/spatial"
	"gonum.org/v1/gonum/mat"
)

// Predictor is an ordinary-Kriging fit over a fixed neighborhood: n
// located values, a covariance function, and the Lagrange-augmented
// system's QR factorization, reused across any number of Predict calls.
type Predictor struct {
	fn     *covfunc.Function
	points spatial.Domain
	values []float64
	qr     *mat.QR
	n      int
}

// Fit builds the ordinary-Kriging system over points/values under fn and
// factorizes it via QR. Returns ErrEmptyNeighborhood if points is empty,
// or ErrLengthMismatch if points and values disagree in length. Fit does
// not detect a degenerate system; Predict reports ErrSingular for it.
//
// Complexity: O(n^3) for the QR factorization of the (n+1)x(n+1) system.
func Fit(fn *covfunc.Function, points spatial.Domain, values []float64) (*Predictor, error) {
	n := points.ElementCount()
	if n == 0 {
		return nil, ErrEmptyNeighborhood
	}
	if len(values) != n {
		return nil, ErrLengthMismatch
	}

	dim := n + 1
	data := make([]float64, dim*dim)
	for i := 0; i < n; i++ {
		ci := points.Centroid(i)
		for j := 0; j < n; j++ {
			h := ci.Distance(points.Centroid(j))
			data[i*dim+j] = fn.Covariance(h)
		}
		data[i*dim+n] = 1 // Lagrange column
		data[n*dim+i] = 1 // Lagrange row
	}
	// Corner stays 0: the Lagrange multiplier's self-coefficient.

	sys := mat.NewDense(dim, dim, data)

	var qr mat.QR
	qr.Factorize(sys)

	return &Predictor{fn: fn, points: points, values: values, qr: &qr, n: n}, nil
}

// Predict returns the ordinary-Kriging conditional mean and variance at
// target, re-solving the fixed factorization against a fresh right-hand
// side. Returns ErrSingular if the solve fails (e.g. duplicate points
// driving the covariance matrix degenerate).
//
// Complexity: O(n^2) per call, reusing Fit's O(n^3) factorization.
func (p *Predictor) Predict(target spatial.Point) (mean, variance float64, err error) {
	n := p.n
	rhsData := make([]float64, n+1)
	for i := 0; i < n; i++ {
		rhsData[i] = p.fn.Covariance(target.Distance(p.points.Centroid(i)))
	}
	rhsData[n] = 1

	rhs := mat.NewVecDense(n+1, rhsData)
	sol := mat.NewVecDense(n+1, nil)
	if err := p.qr.SolveVecTo(sol, false, rhs); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	for i := 0; i < n; i++ {
		mean += sol.AtVec(i) * p.values[i]
	}
	lagrange := sol.AtVec(n)

	var weightedCov float64
	for i := 0; i < n; i++ {
		weightedCov += sol.AtVec(i) * rhsData[i]
	}
	variance = p.fn.Covariance(0) - weightedCov - lagrange
	if variance < 0 {
		variance = 0 // numerical noise near exact interpolation points
	}

	return mean, variance, nil
}

// VariateCount returns the number of output variables the fitted function
// describes, for callers juggling bivariate co-simulation.
func (p *Predictor) VariateCount() int { return p.fn.VariateCount() }
