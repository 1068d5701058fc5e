// Package sim implements the orchestrator: Draw and DrawN, the two public
// entry points spec §4.1 describes. Draw resolves a method (auto-selected
// per §4.1's rules unless overridden), preprocesses exactly once, and
// draws a single realization from the caller's rng. DrawN repeats
// the single-realization step across a bounded worker pool, one
// deterministically-seeded child stream per realization index, and
// assembles the results into an ensemble.Ensemble.
//
// The preprocessed artifact is engine-specific (engine/lu.Artifact,
// engine/seq.Artifact, engine/fft.Artifact, engine/lindgren.Artifact, or a
// registered engine/external.Backend's own Artifact) and is never exposed
// outside this package: callers only ever see process descriptors,
// domains, and attr.Table/ensemble.Ensemble results.
package sim
