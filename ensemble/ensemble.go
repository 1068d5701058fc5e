// SPDX-License-Identifier: MIT
//
// ensemble.go — Ensemble: an indexable collection of realizations with a
// memoizing Fetch (spec §4.8's "fetch is the identity for synchronous
// realizations and a future-resolver for asynchronous ones") and the four
// per-cell reductions. Memoization is a slice of sync.Once, the same
// once-per-slot caching shape core.Graph uses for its RWMutex-guarded
// lazy state, adapted from a single shared lock to one lock per slot so
// concurrent Fetch(i) and Fetch(j) for i != j never contend.

package ensemble

import (
	"math"
	"sort"
	"sync"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/matrix"
)

// Ensemble is a fixed-size collection of realizations over a common
// domain (tracked only by element count; the domain itself is the
// caller's concern), each resolved lazily and cached on first Fetch.
type Ensemble struct {
	elementCount int
	names        []string
	n            int

	once      []sync.Once
	cached    []*attr.Table
	cachedErr []error
	resolve   func(i int) (*attr.Table, error)
}

// New builds an Ensemble of n realizations over a domain with
// elementCount cells and the given output variable names, resolved one at
// a time (and cached) via resolve.
func New(elementCount int, names []string, n int, resolve func(i int) (*attr.Table, error)) *Ensemble {
	return &Ensemble{
		elementCount: elementCount,
		names:        append([]string(nil), names...),
		n:            n,
		once:         make([]sync.Once, n),
		cached:       make([]*attr.Table, n),
		cachedErr:    make([]error, n),
		resolve:      resolve,
	}
}

// NewFromSlice builds a synchronous Ensemble from already-computed
// realizations, one slot per index with an optional per-slot error (spec
// §5, "the error is attached to that realization slot"). errs may be nil.
func NewFromSlice(elementCount int, names []string, reals []*attr.Table, errs []error) *Ensemble {
	n := len(reals)
	return New(elementCount, names, n, func(i int) (*attr.Table, error) {
		if errs != nil && errs[i] != nil {
			return nil, errs[i]
		}
		return reals[i], nil
	})
}

// Len returns the number of realization slots.
func (e *Ensemble) Len() int { return e.n }

// ElementCount returns the shared domain's element count.
func (e *Ensemble) ElementCount() int { return e.elementCount }

// Names returns the output variable names, in column order.
func (e *Ensemble) Names() []string { return append([]string(nil), e.names...) }

// Fetch resolves (and caches) realization i. A failed slot returns its
// recorded error on every call; other slots are unaffected.
func (e *Ensemble) Fetch(i int) (*attr.Table, error) {
	if i < 0 || i >= e.n {
		return nil, ErrIndexOutOfRange
	}
	e.once[i].Do(func() {
		e.cached[i], e.cachedErr[i] = e.resolve(i)
	})
	return e.cached[i], e.cachedErr[i]
}

// matrixOf stacks every successfully fetched realization's name column
// into a (successCount x elementCount) dense matrix, rows in fetch order.
func (e *Ensemble) matrixOf(name string) (matrix.Matrix, error) {
	rows := make([][]float64, 0, e.n)
	for i := 0; i < e.n; i++ {
		tbl, err := e.Fetch(i)
		if err != nil || tbl == nil {
			continue
		}
		col, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, col.Values)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyEnsemble
	}

	m, err := matrix.NewDense(len(rows), e.elementCount)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		for j, v := range r {
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Mean returns the per-cell arithmetic mean of name across every
// successfully fetched realization.
func (e *Ensemble) Mean(name string) ([]float64, error) {
	m, err := e.matrixOf(name)
	if err != nil {
		return nil, err
	}
	_, means, err := matrix.CenterColumns(m)
	return means, err
}

// Var returns the per-cell sample variance (n-1 denominator) of name
// across every successfully fetched realization.
//
// Computed from CenterColumns' centered matrix directly rather than
// matrix.Covariance's full elementCount x elementCount output, since
// elementCount is the grid's cell count and only the diagonal is needed.
func (e *Ensemble) Var(name string) ([]float64, error) {
	m, err := e.matrixOf(name)
	if err != nil {
		return nil, err
	}
	r := m.Rows()
	if r < 2 {
		return nil, ErrInsufficientRealizations
	}
	xc, _, err := matrix.CenterColumns(m)
	if err != nil {
		return nil, err
	}

	c := xc.Cols()
	out := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := xc.At(i, j)
			if err != nil {
				return nil, err
			}
			out[j] += v * v
		}
	}
	for j := range out {
		out[j] /= float64(r - 1)
	}
	return out, nil
}

// valuesPerCell returns, for each domain cell, the values name took
// across every successfully fetched realization, in fetch order.
func (e *Ensemble) valuesPerCell(name string) ([][]float64, error) {
	cells := make([][]float64, e.elementCount)
	found := false
	for i := 0; i < e.n; i++ {
		tbl, err := e.Fetch(i)
		if err != nil || tbl == nil {
			continue
		}
		col, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		found = true
		for j, v := range col.Values {
			cells[j] = append(cells[j], v)
		}
	}
	if !found {
		return nil, ErrEmptyEnsemble
	}
	return cells, nil
}

// CDF returns, per cell, the fraction of successfully fetched
// realizations whose value at that cell is <= x.
func (e *Ensemble) CDF(name string, x float64) ([]float64, error) {
	cells, err := e.valuesPerCell(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for j, vals := range cells {
		var count int
		for _, v := range vals {
			if v <= x {
				count++
			}
		}
		out[j] = float64(count) / float64(len(vals))
	}
	return out, nil
}

// Quantile returns, per cell, the p-quantile (R type-7, linear
// interpolation between order statistics) of the successfully fetched
// realizations' values at that cell.
func (e *Ensemble) Quantile(name string, p float64) ([]float64, error) {
	cells, err := e.valuesPerCell(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for j, vals := range cells {
		out[j] = quantileR7(vals, p)
	}
	return out, nil
}

// quantileR7 is the standard ("R type 7") order-statistic quantile rule:
// h = p*(n-1), linearly interpolated between the surrounding order
// statistics.
func quantileR7(vals []float64, p float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
