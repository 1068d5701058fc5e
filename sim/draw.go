// SPDX-License-Identifier: MIT
//
// draw.go — Draw: the single-realization entry point, and prepareSingle:
// the shared preprocess-once-dispatch-many core both Draw and DrawN build
// on (spec §4.1's three-step procedure).

package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/engine/fft"
	"github.com/geostoch/fieldsim/engine/lindgren"
	"github.com/geostoch/fieldsim/engine/lu"
	"github.com/geostoch/fieldsim/engine/seq"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/spatial"
)

// singleFunc draws one realization from a shared, already-preprocessed
// artifact, consuming rng.
type singleFunc func(rng *rand.Rand) (*attr.Table, error)

// prepared bundles a singleFunc with the metadata DrawN needs to build an
// Ensemble without re-deriving it from proc/domain on every call.
type prepared struct {
	elementCount int
	names        []string
	single       singleFunc
}

// Draw draws one realization of proc over domain, consuming rng. domain
// must be a spatial.Domain for every process kind except
// process.LindgrenProcess, which requires a *engine/lindgren.Mesh.
func Draw(rng *rand.Rand, proc process.Descriptor, domain interface{}, opts ...Option) (*attr.Table, error) {
	o := gatherOptions(opts...)
	p, err := prepare(rng, proc, domain, o)
	if err != nil {
		return nil, err
	}
	return p.single(rng)
}

// prepare runs spec §4.1 steps (1) method selection and (2) preprocess,
// returning a singleFunc closing over the resulting artifact for step (3)
// to call once per realization.
func prepare(rng *rand.Rand, proc process.Descriptor, domain interface{}, o Options) (*prepared, error) {
	method := o.method
	if method == Auto {
		selected, err := selectMethod(proc, domain, o.data)
		if err != nil {
			return nil, err
		}
		method = selected
	}

	switch p := proc.(type) {
	case *process.GaussianProcess:
		dom, ok := domain.(spatial.Domain)
		if !ok {
			return nil, ErrShapeMismatch
		}
		return prepareGaussian(rng, p, dom, method, o)
	case *process.IndicatorProcess:
		dom, ok := domain.(spatial.Domain)
		if !ok {
			return nil, ErrShapeMismatch
		}
		return prepareIndicator(rng, p, dom, method, o)
	case *process.LindgrenProcess:
		mesh, ok := domain.(*lindgren.Mesh)
		if !ok {
			return nil, ErrShapeMismatch
		}
		return prepareLindgren(p, mesh, method, o)
	case *process.External:
		dom, ok := domain.(spatial.Domain)
		if !ok {
			return nil, ErrShapeMismatch
		}
		return prepareExternal(rng, p, dom, method, o)
	default:
		return nil, ErrUnsupportedMethod
	}
}

func prepareGaussian(rng *rand.Rand, gp *process.GaussianProcess, dom spatial.Domain, method Method, o Options) (*prepared, error) {
	names := gp.OutputSchema()

	switch method {
	case FFT:
		art, err := fft.Preprocess(gp, dom, o.data)
		if err != nil {
			return nil, fmt.Errorf("sim: prepare FFT: %w", err)
		}
		return &prepared{
			elementCount: dom.ElementCount(),
			names:        names,
			single:       func(rng *rand.Rand) (*attr.Table, error) { return fft.Single(rng, art) },
		}, nil

	case LU:
		var bound *attr.Table
		if o.data != nil {
			b, err := o.init.Bind(dom, *o.data, names)
			if err != nil {
				return nil, fmt.Errorf("sim: prepare LU: %w", err)
			}
			bound = b
		}
		art, err := lu.Preprocess(gp, dom, names, bound)
		if err != nil {
			return nil, fmt.Errorf("sim: prepare LU: %w", err)
		}
		return &prepared{
			elementCount: dom.ElementCount(),
			names:        names,
			single:       func(rng *rand.Rand) (*attr.Table, error) { return lu.Single(rng, art) },
		}, nil

	case SEQ:
		art, err := seq.Preprocess(rng, gp, dom, o.data, o.init, o.seqOptions)
		if err != nil {
			return nil, fmt.Errorf("sim: prepare SEQ: %w", err)
		}
		return &prepared{
			elementCount: dom.ElementCount(),
			names:        names,
			single:       func(rng *rand.Rand) (*attr.Table, error) { return seq.Single(rng, art) },
		}, nil

	default:
		return nil, ErrUnsupportedMethod
	}
}

func prepareIndicator(rng *rand.Rand, ip *process.IndicatorProcess, dom spatial.Domain, method Method, o Options) (*prepared, error) {
	if method != SEQ {
		return nil, ErrUnsupportedMethod
	}
	names := ip.OutputSchema()
	art, err := seq.PreprocessIndicator(rng, ip, dom, o.data, o.init, o.seqOptions)
	if err != nil {
		return nil, fmt.Errorf("sim: prepare SEQ (indicator): %w", err)
	}
	return &prepared{
		elementCount: dom.ElementCount(),
		names:        names,
		single:       func(rng *rand.Rand) (*attr.Table, error) { return seq.Single(rng, art) },
	}, nil
}

func prepareLindgren(lp *process.LindgrenProcess, mesh *lindgren.Mesh, method Method, o Options) (*prepared, error) {
	if method != Lindgren {
		return nil, ErrUnsupportedMethod
	}
	names := lp.OutputSchema()

	var bound *attr.Table
	if o.data != nil {
		b, err := o.init.Bind(meshDomain{mesh}, *o.data, names)
		if err != nil {
			return nil, fmt.Errorf("sim: prepare Lindgren: %w", err)
		}
		bound = b
	}
	art, err := lindgren.Preprocess(lp, mesh, bound)
	if err != nil {
		return nil, fmt.Errorf("sim: prepare Lindgren: %w", err)
	}
	return &prepared{
		elementCount: mesh.ElementCount(),
		names:        names,
		single:       func(rng *rand.Rand) (*attr.Table, error) { return lindgren.Single(rng, art) },
	}, nil
}

func prepareExternal(rng *rand.Rand, ep *process.External, dom spatial.Domain, method Method, o Options) (*prepared, error) {
	if method != ExternalMethod {
		return nil, ErrUnsupportedMethod
	}
	if o.registry == nil {
		return nil, ErrNoExternalRegistry
	}
	backend, err := o.registry.Lookup(ep.Kind)
	if err != nil {
		return nil, fmt.Errorf("sim: prepare External: %w", err)
	}
	methodName := backend.DefaultMethod(ep, dom, o.data)

	art, err := o.registry.Preprocess(rng, ep, methodName, o.init, dom, o.data)
	if err != nil {
		return nil, fmt.Errorf("sim: prepare External: %w", err)
	}
	return &prepared{
		elementCount: dom.ElementCount(),
		names:        ep.OutputSchema(),
		single: func(rng *rand.Rand) (*attr.Table, error) {
			return o.registry.Single(rng, ep, methodName, dom, o.data, art)
		},
	}, nil
}
