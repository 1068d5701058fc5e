// Package attr implements the realization buffer: for each output
// variable name, a dense vector of length element_count(domain) plus a
// parallel bit-mask of "known" cells (set by conditioning, or by a write
// during simulation). There is no natural third-party library for this
// shape — it is realized directly on stdlib slices, mirroring the
// teacher's plain-struct Vertex/Edge style rather than a generic
// container abstraction.
package attr
