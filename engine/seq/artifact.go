// SPDX-License-Identifier: MIT
//
// artifact.go — Preprocess: scales the domain/data/function to a
// unit-extent frame, builds the neighborhood index and traversal path, and
// binds conditioning data, producing the immutable state every
// realization's sequential scan shares (spec §4.5 steps 1-5).

package seq

import (
	"math/rand/v2"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/binding"
	"github.com/geostoch/fieldsim/covfunc"
	"github.com/geostoch/fieldsim/neighbor"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/scale"
	"github.com/geostoch/fieldsim/spatial"
)

// Artifact is the SEQ engine's immutable preprocessed state, shared
// read-only across every realization drawn from the same (process,
// domain, data) triple. model carries the probability pair (kriging_fit,
// prior) spec §4.5 step 4 describes, specialized for a Gaussian or an
// Indicator process.
type Artifact struct {
	dom      spatial.Domain // unit-extent-scaled
	name     string
	model    probModel
	index    *neighbor.Index
	ball     *neighbor.MetricBall
	path     []int
	initial  *attr.Table // conditioning values + mask, unit-extent frame
	minNeigh int
	maxNeigh int
}

// probModel is the (kriging_fit, prior) pair spec §4.5 step 4 describes:
// Prior is the fallback draw for an under-informed neighborhood or a
// failed local fit; FitPredict attempts the local-neighborhood Kriging
// draw and reports ok=false on a singular fit (KrigingSystemSingular),
// which the caller treats as a fall-through to Prior.
type probModel interface {
	Prior(rng *rand.Rand) float64
	FitPredict(rng *rand.Rand, localDom spatial.Domain, localValues []float64, target spatial.Point) (value float64, ok bool)
}

// Preprocess builds a SEQ artifact for a univariate GaussianProcess over
// dom, optionally conditioned on data bound via init (binding.NearestInit
// when init is nil). rng is consumed only to fix the Shuffle path's
// permutation (if selected); it is not reused by Single.
func Preprocess(rng *rand.Rand, gp *process.GaussianProcess, dom spatial.Domain, data *binding.DataSet, init binding.Method, opts Options) (*Artifact, error) {
	if gp.Func.VariateCount() != 1 || len(gp.Mean) != 1 {
		return nil, ErrShapeMismatch
	}
	name := gp.OutputSchema()[0]
	return preprocessCommon(rng, gp.Func, dom, data, init, opts, name, func(scaledFn *covfunc.Function) probModel {
		return &gaussianModel{fn: scaledFn, mean: gp.Mean[0]}
	})
}

// PreprocessIndicator builds a SEQ artifact for a categorical
// IndicatorProcess over dom, simulating on one-hot-encoded conditioning
// values and reverting to a category index on output (spec §4.5 step 4,
// "Indicator" branch).
func PreprocessIndicator(rng *rand.Rand, ip *process.IndicatorProcess, dom spatial.Domain, data *binding.DataSet, init binding.Method, opts Options) (*Artifact, error) {
	if ip.Func.VariateCount() != len(ip.Prob) {
		return nil, ErrShapeMismatch
	}
	name := ip.OutputSchema()[0]
	prob := append([]float64(nil), ip.Prob...)
	return preprocessCommon(rng, ip.Func, dom, data, init, opts, name, func(scaledFn *covfunc.Function) probModel {
		return &indicatorModel{fn: scaledFn, prob: prob}
	})
}

// preprocessCommon runs spec §4.5 steps 1-3 and 5 (unit-extent scaling,
// neighborhood index/ball, min/max-neighbor clamp, path construction, and
// data binding), shared by the Gaussian and Indicator entry points; only
// step 4 (the probability model) differs, supplied by newModel.
func preprocessCommon(rng *rand.Rand, fn *covfunc.Function, dom spatial.Domain, data *binding.DataSet, init binding.Method, opts Options, name string, newModel func(*covfunc.Function) probModel) (*Artifact, error) {
	alpha, err := scale.Factor(dom, domainOf(data), fn)
	if err != nil {
		return nil, err
	}
	scaledDom, err := scale.PointSet(dom, alpha)
	if err != nil {
		return nil, err
	}
	scaledFn := scale.Function(fn, alpha)

	var conditioning *attr.Table
	if data != nil {
		scaledData := binding.DataSet{Locations: data.Locations, Values: data.Values}
		if alpha != 1 {
			scaledLocations, err := scale.PointSet(data.Locations, alpha)
			if err != nil {
				return nil, err
			}
			scaledData.Locations = scaledLocations
		}
		method := init
		if method == nil {
			method = binding.NearestInit{}
		}
		conditioning, err = method.Bind(scaledDom, scaledData, []string{name})
		if err != nil {
			return nil, err
		}
	} else {
		conditioning, err = attr.NewTable(scaledDom.ElementCount(), []string{name})
		if err != nil {
			return nil, err
		}
	}

	conditionedIdx := conditionedIndices(conditioning, name)

	idx, err := neighbor.NewIndex(scaledDom)
	if err != nil {
		return nil, err
	}

	ball := opts.Ball
	if ball == nil && opts.RangeBall {
		ball = &neighbor.MetricBall{Radius: scaledFn.Range()}
	}

	minNeigh, maxNeigh := opts.clamp(scaledDom.ElementCount())

	path, err := BuildPath(opts.Path, scaledDom, conditionedIdx, rng)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		dom: scaledDom, name: name, model: newModel(scaledFn),
		index: idx, ball: ball, path: path, initial: conditioning,
		minNeigh: minNeigh, maxNeigh: maxNeigh,
	}, nil
}

func domainOf(data *binding.DataSet) spatial.Domain {
	if data == nil {
		return nil
	}
	return data.Locations
}

func conditionedIndices(tbl *attr.Table, name string) []int {
	col, err := tbl.Column(name)
	if err != nil {
		return nil
	}
	var out []int
	for i, set := range col.Mask {
		if set {
			out = append(out, i)
		}
	}
	return out
}
