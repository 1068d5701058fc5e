// Package spatial defines the geometric domains that field processes are
// simulated over (the module has no point-process engine): a dense Grid (a regular lattice with a
// shape tuple and per-axis spacing), a sparse PointSet (an arbitrary
// collection of located points), and View, a non-owning restriction of
// either to a subset of indices.
//
// A View always remembers both its parent Domain and the index subset it
// exposes, so that Parent(View(d, I)) reproduces d exactly and
// ParentIndices(View(d, I)) reproduces I exactly — the same parent/child
// recovery contract the teacher's graph views (core.InducedSubgraph,
// core.UnweightedView) guarantee for induced subgraphs.
//
// Domains are built once and shared read-only by every worker that draws
// a realization over them; nothing here mutates a Domain after
// construction.
package spatial
