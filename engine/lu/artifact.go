// SPDX-License-Identifier: MIT
//
// artifact.go — Preprocess: per-variable conditional covariance
// factorization (spec's D/S partition, C_DD/C_DS/C_SS blocks, Cholesky
// factors, and the precomputed conditional-mean offset), shared read-only
// by every worker drawing a realization from the same process/domain pair.

package lu

import (
	"fmt"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/matrix"
	"github.com/geostoch/fieldsim/matrix/ops"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/spatial"
)

// cholEps is the symmetry tolerance passed to ops.Cholesky; covariance
// blocks built from float64 centroid distances carry rounding noise well
// under this.
const cholEps = 1e-8

// perVariable holds one output variable's preprocessed conditioning state.
type perVariable struct {
	zD        []float64     // conditioning values at indicesD
	dS        []float64     // conditional mean offset at indicesS
	lSS       matrix.Matrix // Cholesky factor of C_SS - Bᵀ·B (or C_SS if D empty)
	mean      float64
	indicesD  []int
	indicesS  []int
	conditional bool // len(indicesD) > 0
}

// Artifact is the LU engine's immutable preprocessed state, reused across
// every realization drawn from the same (process, domain) pair.
type Artifact struct {
	domain spatial.Domain
	names  []string
	vars   []perVariable
	rho    float64 // bivariate cross-correlation, 0 if univariate
}

// Applicable reports whether fn satisfies the LU engine's applicability
// check: stationary, symmetric, and banded (covariance-form).
func Applicable(fn *covfunc.Function) bool {
	return fn.IsStationary() && fn.IsSymmetric() && fn.IsBanded()
}

// Preprocess builds the LU engine's artifact for gp over dom, conditioning
// on data (nil for an unconditional simulation). names must have length
// equal to gp.Func.VariateCount(), matching len(gp.Mean).
func Preprocess(gp *process.GaussianProcess, dom spatial.Domain, names []string, data *attr.Table) (*Artifact, error) {
	fn := gp.Func
	if !Applicable(fn) {
		return nil, ErrNotApplicable
	}

	variateCount := fn.VariateCount()
	if variateCount != 1 && variateCount != 2 {
		return nil, ErrUnsupportedVariateCount
	}
	if len(names) != variateCount || len(gp.Mean) != variateCount {
		return nil, ErrShapeMismatch
	}

	n := dom.ElementCount()
	vars := make([]perVariable, variateCount)
	for j := 0; j < variateCount; j++ {
		pv, err := preprocessVariable(fn, j, dom, n, names[j], gp.Mean[j], data)
		if err != nil {
			return nil, err
		}
		vars[j] = pv
	}

	var rho float64
	if variateCount == 2 {
		rho = fn.Rho()
	}

	return &Artifact{domain: dom, names: append([]string(nil), names...), vars: vars, rho: rho}, nil
}

func preprocessVariable(fn *covfunc.Function, j int, dom spatial.Domain, n int, name string, mean float64, data *attr.Table) (perVariable, error) {
	var indicesD, indicesS []int
	var zD []float64

	if data != nil {
		if col, err := data.Column(name); err == nil {
			for i := 0; i < n; i++ {
				if col.Mask[i] {
					indicesD = append(indicesD, i)
					zD = append(zD, col.Values[i])
				} else {
					indicesS = append(indicesS, i)
				}
			}
		}
	}
	if indicesD == nil {
		indicesS = make([]int, n)
		for i := range indicesS {
			indicesS[i] = i
		}
	}

	viewS, err := spatial.NewView(dom, indicesS)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}

	if len(indicesD) == 0 {
		cSS, err := covfunc.PairwiseAt(fn, j, viewS, viewS)
		if err != nil {
			return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
		}
		lSS, err := ops.Cholesky(cSS, cholEps)
		if err != nil {
			return perVariable{}, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
		}
		return perVariable{lSS: lSS, mean: mean, indicesS: indicesS}, nil
	}

	viewD, err := spatial.NewView(dom, indicesD)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}

	cDD, err := covfunc.PairwiseAt(fn, j, viewD, viewD)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}
	cDS, err := covfunc.PairwiseAt(fn, j, viewD, viewS)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}
	cSS, err := covfunc.PairwiseAt(fn, j, viewS, viewS)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}

	lDD, err := ops.Cholesky(cDD, cholEps)
	if err != nil {
		return perVariable{}, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}

	b, err := solveLowerColumns(lDD, cDS)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}

	schur, err := schurComplement(cSS, b)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}
	lSS, err := ops.Cholesky(schur, cholEps)
	if err != nil {
		return perVariable{}, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}

	w, err := ops.SolveLower(lDD, zD)
	if err != nil {
		return perVariable{}, fmt.Errorf("lu: preprocess: %w", err)
	}
	dS := matVecTransposed(b, w)

	return perVariable{
		zD: zD, dS: dS, lSS: lSS, mean: mean,
		indicesD: indicesD, indicesS: indicesS, conditional: true,
	}, nil
}

// solveLowerColumns solves L·B = C column by column, returning B with the
// same shape as C.
func solveLowerColumns(L, c matrix.Matrix) (matrix.Matrix, error) {
	rows, cols := c.Rows(), c.Cols()
	b, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	col := make([]float64, rows)
	for k := 0; k < cols; k++ {
		for i := 0; i < rows; i++ {
			v, _ := c.At(i, k)
			col[i] = v
		}
		x, err := ops.SolveLower(L, col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < rows; i++ {
			_ = b.Set(i, k, x[i])
		}
	}
	return b, nil
}

// schurComplement returns cSS - Bᵀ·B.
func schurComplement(cSS, b matrix.Matrix) (matrix.Matrix, error) {
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, err
	}
	btb, err := matrix.Mul(bt, b)
	if err != nil {
		return nil, err
	}
	return matrix.Sub(cSS, btb)
}

// matVecTransposed returns Bᵀ·w without materializing Bᵀ.
func matVecTransposed(b matrix.Matrix, w []float64) []float64 {
	rows, cols := b.Rows(), b.Cols()
	out := make([]float64, cols)
	for k := 0; k < cols; k++ {
		var sum float64
		for i := 0; i < rows; i++ {
			v, _ := b.At(i, k)
			sum += v * w[i]
		}
		out[k] = sum
	}
	return out
}
