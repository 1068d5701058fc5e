// SPDX-License-Identifier: MIT
//
// method.go — Method: the engine selector, and selectMethod's realization
// of spec §4.1's auto-selection rules.

package sim

import (
	"github.com/geostoch/fieldsim/binding"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/spatial"
)

// Method selects which engine a realization is drawn through.
type Method int

const (
	// Auto defers to selectMethod's per-process-kind rules.
	Auto Method = iota
	// LU selects the dense-covariance Cholesky engine (engine/lu).
	LU
	// SEQ selects the sequential Gaussian/indicator Kriging engine (engine/seq).
	SEQ
	// FFT selects the spectral FFT-MA engine (engine/fft).
	FFT
	// Lindgren selects the SPDE precision-matrix engine (engine/lindgren).
	Lindgren
	// ExternalMethod dispatches through a registered engine/external.Backend.
	ExternalMethod
)

// String names m for error messages and logging-free debug output.
func (m Method) String() string {
	switch m {
	case Auto:
		return "Auto"
	case LU:
		return "LU"
	case SEQ:
		return "SEQ"
	case FFT:
		return "FFT"
	case Lindgren:
		return "Lindgren"
	case ExternalMethod:
		return "External"
	default:
		return "Unknown"
	}
}

// gridOf returns dom's underlying spatial.Grid, following a spatial.View
// to its parent, or nil if dom is neither.
func gridOf(dom spatial.Domain) *spatial.Grid {
	switch d := dom.(type) {
	case *spatial.Grid:
		return d
	case *spatial.View:
		if g, ok := spatial.Parent(d).(*spatial.Grid); ok {
			return g
		}
	}
	return nil
}

// selectGaussianMethod implements spec §4.1's Gaussian method
// auto-selection rules, in order: FFT, then LU, then SEQ.
func selectGaussianMethod(gp *process.GaussianProcess, dom spatial.Domain, data *binding.DataSet) Method {
	fn := gp.Func

	if data == nil && fn.IsStationary() && fn.VariateCount() == 1 {
		if grid := gridOf(dom); grid != nil {
			bbox, err := spatial.ComputeBoundingBox(dom)
			if err == nil && fn.Range() <= bbox.MinSide()/3 {
				return FFT
			}
		}
	}

	if dom.ElementCount() < 10000 && fn.IsStationary() && fn.IsSymmetric() && fn.IsBanded() {
		return LU
	}

	return SEQ
}

// selectMethod resolves Auto against proc's kind, returning
// ErrUnsupportedMethod for a process kind selectMethod does not recognize
// and ErrShapeMismatch when a Gaussian, Indicator or External process is
// given a domain that is not a spatial.Domain. A LindgrenProcess always
// resolves to Lindgren here; its *lindgren.Mesh domain is checked in
// prepare.
func selectMethod(proc process.Descriptor, domain interface{}, data *binding.DataSet) (Method, error) {
	switch p := proc.(type) {
	case *process.GaussianProcess:
		dom, ok := domain.(spatial.Domain)
		if !ok {
			return Auto, ErrShapeMismatch
		}
		return selectGaussianMethod(p, dom, data), nil
	case *process.IndicatorProcess:
		if _, ok := domain.(spatial.Domain); !ok {
			return Auto, ErrShapeMismatch
		}
		return SEQ, nil
	case *process.LindgrenProcess:
		return Lindgren, nil
	case *process.External:
		if _, ok := domain.(spatial.Domain); !ok {
			return Auto, ErrShapeMismatch
		}
		return ExternalMethod, nil
	default:
		return Auto, ErrUnsupportedMethod
	}
}
