// SPDX-License-Identifier: MIT
// Package lindgren: sentinel error set.

package lindgren

import "errors"

var (
	// ErrEmptyMesh indicates a Mesh with zero vertices.
	ErrEmptyMesh = errors.New("lindgren: mesh has no vertices")

	// ErrShapeMismatch indicates the Laplacian or measure matrix is not
	// square with dimension equal to the vertex count.
	ErrShapeMismatch = errors.New("lindgren: laplace/measure matrix shape does not match vertex count")

	// ErrDisconnectedMesh indicates the mesh's Laplacian implies more than
	// one connected component; the SPDE precision matrix built from a
	// disconnected mesh does not correspond to a single Gaussian field.
	ErrDisconnectedMesh = errors.New("lindgren: mesh is not connected")

	// ErrNotPositiveDefinite wraps a Cholesky factorization failure on the
	// precision matrix (or one of its conditioning blocks).
	ErrNotPositiveDefinite = errors.New("lindgren: precision matrix is not positive-definite")

	// ErrUnknownVariable indicates conditioning data was supplied for an
	// output variable name other than the process's single output
	// ("Z").
	ErrUnknownVariable = errors.New("lindgren: unknown output variable")
)
