// SPDX-License-Identifier: MIT

package process

import (
	"math"

	"github.com/geostoch/fieldsim/covfunc"
)

// simplexTol bounds how far sum(Prob) may drift from 1.0 and still be
// accepted as a valid probability simplex.
const simplexTol = 1e-9

// Descriptor is the capability every process kind exposes to the
// orchestrator: how many jointly modeled variables it has, and what
// output variable names a realization buffer must carry.
type Descriptor interface {
	// VariateCount returns the number of jointly modeled variables.
	VariateCount() int

	// OutputSchema returns the output variable names, in column order.
	OutputSchema() []string
}

// GaussianProcess is a multivariate Gaussian field process: realizations
// are draws from N(Mean, Func) over the simulation domain.
type GaussianProcess struct {
	Func *covfunc.Function
	Mean []float64
}

// NewGaussianProcess validates |mean| == variate_count(func) and returns a
// GaussianProcess, or ErrShapeMismatch.
func NewGaussianProcess(fn *covfunc.Function, mean []float64) (*GaussianProcess, error) {
	if len(mean) != fn.VariateCount() {
		return nil, ErrShapeMismatch
	}
	return &GaussianProcess{Func: fn, Mean: append([]float64(nil), mean...)}, nil
}

// VariateCount implements Descriptor.
func (p *GaussianProcess) VariateCount() int { return len(p.Mean) }

// OutputSchema implements Descriptor, naming the single column Z for a
// univariate process and columns Z1..Zk otherwise.
func (p *GaussianProcess) OutputSchema() []string {
	return numberedSchema("Z", len(p.Mean))
}

// IndicatorProcess is a categorical field process over VariateCount()
// categories with marginal occurrence probabilities Prob.
type IndicatorProcess struct {
	Func *covfunc.Function
	Prob []float64
}

// NewIndicatorProcess validates len(prob) == variate_count(func) and that
// prob is a probability simplex, or returns ErrShapeMismatch/ErrNotSimplex.
func NewIndicatorProcess(fn *covfunc.Function, prob []float64) (*IndicatorProcess, error) {
	if len(prob) != fn.VariateCount() {
		return nil, ErrShapeMismatch
	}
	sum := 0.0
	for _, p := range prob {
		if p < 0 {
			return nil, ErrNotSimplex
		}
		sum += p
	}
	if math.Abs(sum-1.0) > simplexTol {
		return nil, ErrNotSimplex
	}
	return &IndicatorProcess{Func: fn, Prob: append([]float64(nil), prob...)}, nil
}

// VariateCount implements Descriptor.
func (p *IndicatorProcess) VariateCount() int { return len(p.Prob) }

// OutputSchema implements Descriptor, naming the single category column.
func (p *IndicatorProcess) OutputSchema() []string { return []string{"Category"} }

// LindgrenProcess is the mesh-only SPDE field process (secondary engine):
// a Matern-like field implied by a sparse precision matrix built from a
// mesh's Laplacian and measure matrix, parameterized by Range and Sill
// instead of a full covfunc.Function (spec §6 mesh contract).
type LindgrenProcess struct {
	Range float64
	Sill  float64
}

// NewLindgrenProcess validates Range > 0 and Sill > 0.
func NewLindgrenProcess(rangeParam, sill float64) (*LindgrenProcess, error) {
	if rangeParam <= 0 {
		return nil, ErrInvalidRange
	}
	if sill <= 0 {
		return nil, ErrInvalidSill
	}
	return &LindgrenProcess{Range: rangeParam, Sill: sill}, nil
}

// VariateCount implements Descriptor; Lindgren fields are always univariate.
func (p *LindgrenProcess) VariateCount() int { return 1 }

// OutputSchema implements Descriptor.
func (p *LindgrenProcess) OutputSchema() []string { return []string{"Z"} }

// External is an opaque descriptor for a third-party texture-synthesis
// back-end (image-quilting, Turing-pattern, stratigraphic-record). Kind
// names the back-end; Params carries back-end-specific configuration the
// core does not interpret; Schema declares the output variable names.
type External struct {
	Kind   string
	Params map[string]interface{}
	Schema []string
}

// NewExternal validates Kind is non-empty.
func NewExternal(kind string, params map[string]interface{}, schema []string) (*External, error) {
	if kind == "" {
		return nil, ErrEmptyKind
	}
	return &External{Kind: kind, Params: params, Schema: append([]string(nil), schema...)}, nil
}

// VariateCount implements Descriptor.
func (p *External) VariateCount() int { return len(p.Schema) }

// OutputSchema implements Descriptor.
func (p *External) OutputSchema() []string { return append([]string(nil), p.Schema...) }

// numberedSchema builds ["prefix1", "prefix2", ...] for k >= 2, or
// ["prefix"] for k == 1 (the common univariate case keeps a bare name).
func numberedSchema(prefix string, k int) []string {
	if k <= 1 {
		return []string{prefix}
	}
	out := make([]string, k)
	for i := range out {
		out[i] = prefix + itoa(i+1)
	}
	return out
}

// itoa is a tiny base-10 integer formatter for the small
// variate counts (1-2, per spec's bivariate limit) this package handles.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
