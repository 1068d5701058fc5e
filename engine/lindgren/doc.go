// Package lindgren implements the mesh-only SPDE engine: a realization is a
// draw against a sparse-in-spirit precision matrix Q = tau^2*(kappa^2*M + L)
// built from a mesh's Laplacian L and measure (mass) matrix M, rather than
// against a dense covariance matrix evaluated from a covfunc.Function. This
// is the secondary engine named in spec §6; it accepts a process.LindgrenProcess
// and a Mesh in place of the primary engines' covfunc.Function and
// spatial.Domain.
package lindgren
