// Package process defines the process descriptors the orchestrator
// dispatches on: GaussianProcess and IndicatorProcess (the two processes
// driven by the core field-simulation engines), LindgrenProcess (the
// mesh-only SPDE plug-in), and External, an opaque descriptor for
// third-party texture-synthesis back-ends (quilting, Turing, strata).
package process
