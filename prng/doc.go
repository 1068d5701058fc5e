// Package prng provides the splittable, reproducible PRNG source the
// orchestrator uses to derive one child stream per realization: given a
// parent seed and a realization index, Source.Child always returns the
// same stream regardless of worker-pool size or scheduling order, which is
// what makes draw(seed, process, domain, n) bit-identical across worker
// counts (spec §5, "Ordering guarantees").
//
// Standard-normal and categorical draws on top of a child stream are
// provided in normal.go / categorical.go for the engines built on this
// package (LU, SEQ, FFT).
package prng
