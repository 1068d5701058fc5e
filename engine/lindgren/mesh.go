// SPDX-License-Identifier: MIT
//
// mesh.go — Mesh: the geometry carrier the Lindgren engine simulates over,
// a vertex set plus its Laplacian (stiffness) and measure (mass) matrices.
// Mesh generation itself (triangulation, FEM assembly) is out of scope
// (spec §6, "mesh geometry is accepted as a precomputed input"); Mesh only
// validates and stores what NewMesh is handed.

package lindgren

import "github.com/geostoch/fieldsim/matrix"

// Mesh is a finite-element vertex set, carrying the two dense matrices the
// precision-matrix construction needs. Unlike spatial.Grid/PointSet, Mesh
// is consumed only by this package: the SPDE route never evaluates a
// covfunc.Function or queries spatial.Domain, so Mesh does not implement
// that interface.
type Mesh struct {
	vertices []point
	laplace  matrix.Matrix
	measure  matrix.Matrix
}

// point mirrors spatial.Point's shape without importing it, keeping Mesh
// free to construct independent of the spatial package's constructors.
type point struct {
	coords []float64
}

// NewMesh validates that laplace and measure are both square with
// dimension len(vertices) and returns a Mesh.
func NewMesh(vertices [][]float64, laplace, measure matrix.Matrix) (*Mesh, error) {
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyMesh
	}
	if laplace.Rows() != n || laplace.Cols() != n {
		return nil, ErrShapeMismatch
	}
	if measure.Rows() != n || measure.Cols() != n {
		return nil, ErrShapeMismatch
	}

	pts := make([]point, n)
	for i, v := range vertices {
		c := make([]float64, len(v))
		copy(c, v)
		pts[i] = point{coords: c}
	}
	return &Mesh{vertices: pts, laplace: laplace, measure: measure}, nil
}

// ElementCount returns the number of mesh vertices.
func (m *Mesh) ElementCount() int { return len(m.vertices) }

// Dims returns the coordinate dimension of the mesh vertices.
func (m *Mesh) Dims() int {
	if len(m.vertices) == 0 {
		return 0
	}
	return len(m.vertices[0].coords)
}

// VertexCoords returns a copy of vertex i's coordinates.
func (m *Mesh) VertexCoords(i int) []float64 {
	return append([]float64(nil), m.vertices[i].coords...)
}

// Laplacian returns the mesh's stiffness matrix L.
func (m *Mesh) Laplacian() matrix.Matrix { return m.laplace }

// Measure returns the mesh's mass matrix M.
func (m *Mesh) Measure() matrix.Matrix { return m.measure }
