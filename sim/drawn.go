// SPDX-License-Identifier: MIT
//
// drawn.go — DrawN: the n-realization entry point, dispatching the
// artifact prepared once by prepare() across a bounded worker pool via
// golang.org/x/sync/errgroup, one deterministically-seeded child PRNG
// stream per realization index (spec §5's ordering guarantee).

package sim

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/ensemble"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/prng"
	"golang.org/x/sync/errgroup"
)

// DrawN draws n realizations of proc over domain. rng is passed to the
// one-time preprocessing step and then seeds a prng.Source; every
// realization's own randomness comes from a child stream derived
// deterministically from (rng, i), so the resulting
// Ensemble's content is bit-identical regardless of worker count.
//
// With WithAsync, DrawN returns as soon as dispatch begins; the returned
// Ensemble's Fetch(i) blocks until realization i's worker completes.
// Without it, DrawN blocks until every realization has been attempted.
func DrawN(rng *rand.Rand, proc process.Descriptor, domain interface{}, n int, opts ...Option) (*ensemble.Ensemble, error) {
	o := gatherOptions(opts...)
	if o.asyncMode && containsMaster(o.workers) {
		return nil, ErrInvalidWorkerPool
	}

	p, err := prepare(rng, proc, domain, o)
	if err != nil {
		return nil, err
	}

	source := prng.NewSource(rng.Uint64())
	results := make([]*attr.Table, n)
	errs := make([]error, n)
	ready := make([]chan struct{}, n)
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	workers := len(o.workers)
	if workers < 1 {
		workers = 1
	}

	var done atomic.Int64
	var failed atomic.Bool

	g := &errgroup.Group{}
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			defer close(ready[i])
			if o.failFast && failed.Load() {
				errs[i] = ErrRealizationSkipped
				return nil
			}
			childRng := source.Child(uint64(i))
			tbl, err := p.single(childRng)
			if err != nil {
				errs[i] = err
				if o.failFast {
					failed.Store(true)
				}
			} else {
				results[i] = tbl
			}
			if o.showProgress && o.progress != nil {
				o.progress(int(done.Add(1)), n)
			}
			return nil
		})
	}

	if o.asyncMode {
		go g.Wait() //nolint:errcheck // per-slot errors already captured in errs
		return ensemble.New(p.elementCount, p.names, n, func(i int) (*attr.Table, error) {
			<-ready[i]
			return results[i], errs[i]
		}), nil
	}

	_ = g.Wait() //nolint:errcheck // per-slot errors already captured in errs
	return ensemble.NewFromSlice(p.elementCount, p.names, results, errs), nil
}

// containsMaster reports whether ids includes MasterWorker.
func containsMaster(ids []WorkerID) bool {
	for _, id := range ids {
		if id == MasterWorker {
			return true
		}
	}
	return false
}
