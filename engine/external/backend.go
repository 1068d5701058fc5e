// SPDX-License-Identifier: MIT
//
// backend.go — Backend: the two-operation plug-in contract (spec §6's
// "preprocess/single" collaborator interface) every third-party
// texture-synthesis adapter implements, plus Registry: a concurrency-safe
// Kind → Backend lookup table back-ends register themselves into at
// package-init time, mirroring core.Graph's read/write-lock split between
// mutation (Register) and query (Lookup).

package external

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/geostoch/fieldsim/attr"
	"github.com/geostoch/fieldsim/binding"
	"github.com/geostoch/fieldsim/process"
	"github.com/geostoch/fieldsim/spatial"
)

// Artifact is a backend's opaque preprocessed state; the core never
// inspects it, only carries it from Preprocess to Single.
type Artifact interface{}

// Backend is the contract a third-party process back-end implements to
// plug into the core's Draw/DrawN dispatch alongside the primary engines.
type Backend interface {
	// Preprocess builds shared, read-only state for desc over dom,
	// optionally conditioned on data. init selects how data is bound onto
	// dom before the backend sees it; method names which of the backend's
	// own algorithm variants to use, if it has more than one.
	Preprocess(rng *rand.Rand, desc *process.External, method string, init binding.Method, dom spatial.Domain, data *binding.DataSet) (Artifact, error)

	// Single draws one realization from a preprocessed Artifact.
	Single(rng *rand.Rand, desc *process.External, method string, dom spatial.Domain, data *binding.DataSet, art Artifact) (*attr.Table, error)

	// OutputSchema returns the output variable names this backend writes
	// for desc, in column order. Must match desc.Schema.
	OutputSchema(desc *process.External) []string

	// DefaultMethod returns the method name the backend would pick for
	// desc over dom/data when the caller does not name one explicitly.
	DefaultMethod(desc *process.External, dom spatial.Domain, data *binding.DataSet) string
}

// Registry is a concurrency-safe Kind → Backend lookup table.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register associates kind with backend. Returns ErrAlreadyRegistered if
// kind already has a backend.
func (r *Registry) Register(kind string, backend Backend) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.backends[kind]; exists {
		return fmt.Errorf("external: register %q: %w", kind, ErrAlreadyRegistered)
	}
	r.backends[kind] = backend
	return nil
}

// Lookup returns the backend registered for kind, or ErrUnknownKind.
func (r *Registry) Lookup(kind string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[kind]
	if !ok {
		return nil, fmt.Errorf("external: lookup %q: %w", kind, ErrUnknownKind)
	}
	return b, nil
}

// Preprocess resolves desc.Kind's backend and delegates to it, first
// checking the backend's declared schema against desc.Schema.
func (r *Registry) Preprocess(rng *rand.Rand, desc *process.External, method string, init binding.Method, dom spatial.Domain, data *binding.DataSet) (Artifact, error) {
	b, err := r.Lookup(desc.Kind)
	if err != nil {
		return nil, err
	}
	if !schemaEqual(b.OutputSchema(desc), desc.Schema) {
		return nil, ErrSchemaMismatch
	}
	return b.Preprocess(rng, desc, method, init, dom, data)
}

// Single resolves desc.Kind's backend and delegates to it.
func (r *Registry) Single(rng *rand.Rand, desc *process.External, method string, dom spatial.Domain, data *binding.DataSet, art Artifact) (*attr.Table, error) {
	b, err := r.Lookup(desc.Kind)
	if err != nil {
		return nil, err
	}
	return b.Single(rng, desc, method, dom, data, art)
}

func schemaEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
