// SPDX-License-Identifier: MIT
//
// artifact.go — Preprocess: the SPDE precision matrix Q, its D/S partition
// against conditioning data, and the Cholesky factor and conditional-mean
// offset every realization draws against (spec §6's mesh contract, adapted
// from engine/lu's covariance D/S partition to the dual precision-matrix
// form: conditioning on a GMRF only ever needs Q_SS and Q_SD, never a
// Schur complement, since the conditional covariance of S given D is
// exactly Q_SS^-1).

package lindgren

import (
	"fmt"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/matrix"
	"github.com/geostoch/fieldsim/matrix/ops"
	"github.com/geostoch/fieldsim/process"
)

// cholEps is the symmetry tolerance passed to ops.Cholesky.
const cholEps = 1e-8

// Artifact is the Lindgren engine's immutable preprocessed state, reused
// across every realization drawn from the same (process, mesh) pair.
type Artifact struct {
	mesh        *Mesh
	name        string
	zD          []float64
	indicesD    []int
	indicesS    []int
	mS          []float64     // conditional mean at indicesS, nil if unconditional
	lSS         matrix.Matrix // Cholesky factor of Q_SS
	conditional bool
}

// Preprocess builds the Lindgren engine's artifact for lp over mesh,
// conditioning on data (nil for an unconditional simulation). data, if
// given, must carry a column named lp.OutputSchema()[0] ("Z").
//
// The precision matrix is Q = tau^2*(kappa^2*M + L), the discretized
// alpha=1 Matern SPDE operator (Whittle-Matern field with smoothness
// nu = 1 - d/2) evaluated against the mesh's own Laplacian L and measure
// M, with kappa = 2/Range and tau^2 = 1/Sill, so the field's covariance
// Q^-1 scales linearly with Sill. The marginal variance at a vertex also
// depends on the mesh's L and M and is not, in general, equal to Sill.
func Preprocess(lp *process.LindgrenProcess, mesh *Mesh, data *attr.Table) (*Artifact, error) {
	ok, err := connected(mesh)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDisconnectedMesh
	}

	n := mesh.ElementCount()
	kappa := 2.0 / lp.Range
	tau2 := 1.0 / lp.Sill

	q, err := buildPrecision(mesh, kappa, tau2)
	if err != nil {
		return nil, fmt.Errorf("lindgren: preprocess: %w", err)
	}

	name := lp.OutputSchema()[0]
	var indicesD, indicesS []int
	var zD []float64
	if data != nil {
		col, err := data.Column(name)
		if err != nil {
			return nil, ErrUnknownVariable
		}
		for i := 0; i < n; i++ {
			if col.Mask[i] {
				indicesD = append(indicesD, i)
				zD = append(zD, col.Values[i])
			} else {
				indicesS = append(indicesS, i)
			}
		}
	}
	if indicesD == nil {
		indicesS = make([]int, n)
		for i := range indicesS {
			indicesS[i] = i
		}
	}

	qSS, err := submatrix(q, indicesS, indicesS)
	if err != nil {
		return nil, fmt.Errorf("lindgren: preprocess: %w", err)
	}
	if err := checkPositiveDefinite(qSS); err != nil {
		return nil, err
	}
	lSS, err := ops.Cholesky(qSS, cholEps)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, err)
	}

	art := &Artifact{mesh: mesh, name: name, lSS: lSS, indicesS: indicesS}

	if len(indicesD) > 0 {
		qSD, err := submatrix(q, indicesS, indicesD)
		if err != nil {
			return nil, fmt.Errorf("lindgren: preprocess: %w", err)
		}
		rhs, err := matrix.MatVec(qSD, zD)
		if err != nil {
			return nil, fmt.Errorf("lindgren: preprocess: %w", err)
		}
		for i := range rhs {
			rhs[i] = -rhs[i]
		}
		w, err := ops.SolveLower(lSS, rhs)
		if err != nil {
			return nil, fmt.Errorf("lindgren: preprocess: %w", err)
		}
		mS, err := ops.SolveUpper(lSS, w)
		if err != nil {
			return nil, fmt.Errorf("lindgren: preprocess: %w", err)
		}

		art.zD = zD
		art.indicesD = indicesD
		art.mS = mS
		art.conditional = true
	}

	return art, nil
}

// buildPrecision returns tau2*(kappa^2*M + L).
func buildPrecision(mesh *Mesh, kappa, tau2 float64) (matrix.Matrix, error) {
	scaledM, err := matrix.Scale(mesh.Measure(), kappa*kappa)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(scaledM, mesh.Laplacian())
	if err != nil {
		return nil, err
	}
	return matrix.Scale(sum, tau2)
}

// eigenTol/eigenMaxIter bound the Jacobi eigen-decomposition used as a
// cheap positive-definiteness pre-check ahead of the Cholesky factor that
// actually needs Q_SS to be positive-definite.
const (
	eigenTol     = 1e-9
	eigenMaxIter = 100
)

// checkPositiveDefinite reports ErrNotPositiveDefinite if any eigenvalue of
// qSS is non-positive.
func checkPositiveDefinite(qSS matrix.Matrix) error {
	eigenvalues, _, err := ops.Eigen(qSS, eigenTol, eigenMaxIter)
	if err != nil {
		return fmt.Errorf("lindgren: preprocess: %w", err)
	}
	for _, lambda := range eigenvalues {
		if lambda <= 0 {
			return ErrNotPositiveDefinite
		}
	}
	return nil
}

// submatrix returns m restricted to rows and cols.
func submatrix(m matrix.Matrix, rows, cols []int) (matrix.Matrix, error) {
	out, err := matrix.NewDense(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		for j, c := range cols {
			v, err := m.At(r, c)
			if err != nil {
				return nil, err
			}
			if err := out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
