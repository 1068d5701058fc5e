// Package ops provides advanced matrix operations for the fieldsim matrix package.
// Cholesky factors a symmetric positive-definite matrix A = L·Lᵀ, the
// workhorse decomposition for Gaussian covariance/precision matrices: it is
// roughly half the cost of Doolittle LU and exposes a single triangular
// factor that both the LU engine and the Lindgren SPDE engine reuse for
// drawing correlated normals (x = L·z in the LU engine, Lᵀ·x = z in the
// Lindgren engine) and for solving Kriging systems.
package ops

import (
	"fmt"
	"math"

	"github.com/geostoch/fieldsim/matrix"
)

// Cholesky performs Cholesky-Banachiewicz factorization on a symmetric
// positive-definite matrix m, returning the lower-triangular factor L such
// that m = L·Lᵀ.
//
// Returns ErrDimensionMismatch if m is not square, matrix.ErrAsymmetry if m
// is not symmetric within eps, or ErrSingular if a diagonal pivot is
// non-positive (m is not positive-definite, or numerically indistinguishable
// from it).
//
// Time Complexity: O(n³), where n = m.Rows(); Memory: O(n²) for L.
func Cholesky(m matrix.Matrix, eps float64) (matrix.Matrix, error) {
	// Stage 1: Validate input is square and symmetric.
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, fmt.Errorf("Cholesky: non-square matrix %dx%d: %w", rows, cols, matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateSymmetric(m, eps); err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}
	n := rows

	// Stage 2: Prepare L.
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}

	// Stage 3: Execute factorization row by row.
	var (
		i, j, k int
		sum     float64
		lik     float64
		ljk     float64
		aii     float64
		aij     float64
		ljj     float64
	)
	for i = 0; i < n; i++ {
		// Off-diagonal entries L[i][j] for j < i.
		for j = 0; j < i; j++ {
			sum = 0
			for k = 0; k < j; k++ {
				lik, _ = L.At(i, k)
				ljk, _ = L.At(j, k)
				sum += lik * ljk
			}
			aij, _ = m.At(i, j)
			ljj, _ = L.At(j, j)
			if ljj == 0 {
				return nil, fmt.Errorf("Cholesky: zero pivot at %d: %w", j, ErrSingular)
			}
			_ = L.Set(i, j, (aij-sum)/ljj)
		}

		// Diagonal entry L[i][i].
		sum = 0
		for k = 0; k < i; k++ {
			lik, _ = L.At(i, k)
			sum += lik * lik
		}
		aii, _ = m.At(i, i)
		diag := aii - sum
		if diag <= 0 || math.IsNaN(diag) {
			return nil, fmt.Errorf("Cholesky: non-positive-definite pivot at %d: %w", i, ErrSingular)
		}
		_ = L.Set(i, i, math.Sqrt(diag))
	}

	// Stage 4: Finalize and return.
	return L, nil
}

// SolveLower solves L·x = b for x via forward substitution, where L is
// lower-triangular (as returned by Cholesky). Used to back out whitened
// residuals z = L⁻¹(y - mean) during conditioning.
//
// Time Complexity: O(n²); Memory: O(n).
func SolveLower(L matrix.Matrix, b []float64) ([]float64, error) {
	n := L.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("SolveLower: %w", err)
	}

	x := make([]float64, n)
	var i, k int
	var sum, lik, lii float64
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			lik, _ = L.At(i, k)
			sum += lik * x[k]
		}
		lii, _ = L.At(i, i)
		if lii == 0 {
			return nil, fmt.Errorf("SolveLower: zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = (b[i] - sum) / lii
	}

	return x, nil
}

// SolveUpper solves Lᵀ·x = b for x via backward substitution, completing the
// pair with SolveLower for full L·Lᵀ·x = b systems (simple Kriging normal
// equations, conditional-mean updates).
//
// Time Complexity: O(n²); Memory: O(n).
func SolveUpper(L matrix.Matrix, b []float64) ([]float64, error) {
	n := L.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("SolveUpper: %w", err)
	}

	x := make([]float64, n)
	var i, k int
	var sum, lki, lii float64
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			lki, _ = L.At(k, i) // Lᵀ[i][k] == L[k][i]
			sum += lki * x[k]
		}
		lii, _ = L.At(i, i)
		if lii == 0 {
			return nil, fmt.Errorf("SolveUpper: zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = (b[i] - sum) / lii
	}

	return x, nil
}
