// Package fieldsim generates random realizations of spatial stochastic
// field processes (values defined over a geospatial domain). Point
// processes (random point patterns inside a geometry) are not implemented:
// there is no point-process descriptor and no point-process engine.
//
// The public entry point is sim.Draw / sim.DrawN: given a PRNG, a process
// descriptor, and a domain, the orchestrator selects a simulation method
// (or uses a caller-supplied override), preprocesses it once into an
// immutable artifact, and draws one or many realizations from that
// artifact — sharing it read-only across a worker pool when drawing many.
//
// Three interchangeable algorithms (engine/lu, engine/seq, engine/fft)
// implement the Gaussian field process; two further engines cover the
// Lindgren process and third-party back-ends:
//
//	engine/lu      — dense-covariance Cholesky simulation with exact
//	                  conditioning and bivariate co-simulation
//	engine/seq      — sequential simulation: path traversal plus
//	                  per-cell neighborhood Kriging
//	engine/fft      — spectral (FFT-MA) synthesis on regular grids with
//	                  Kriging-based residual conditioning
//	engine/lindgren — SPDE simulation via a mesh's sparse precision
//	                  matrix (secondary engine, mesh domains only)
//	engine/external — the plug-in shape for third-party texture-synthesis
//	                  back-ends (image quilting, Turing patterns, strata)
//
// These sit on a handful of shared packages: spatial (domains, grids,
// point sets, views), covfunc (covariance/variogram functions), krige
// (the Kriging predictor), neighbor (spatial indexing), binding (data
// conditioning), scale (unit-extent rescaling), attr (the realization
// buffer), process (process descriptors), prng (reproducible child
// streams), and ensemble (realization collections with reductions).
//
//	go get github.com/geostoch/fieldsim
package fieldsim
