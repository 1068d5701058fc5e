// SPDX-License-Identifier: MIT
//
// domain.go — meshDomain: a spatial.Domain facade over a *lindgren.Mesh's
// vertex set, used only to let binding.Method bind conditioning data onto
// a mesh (Mesh itself deliberately does not implement spatial.Domain,
// since the SPDE route never evaluates a covfunc.Function or queries a
// Domain directly).

package sim

import (
	"github.com/geostoch/fieldsim/engine/lindgren"
	"github.com/geostoch/fieldsim/spatial"
)

// meshDomain adapts a *lindgren.Mesh's vertex set to spatial.Domain.
type meshDomain struct {
	mesh *lindgren.Mesh
}

// ElementCount implements spatial.Domain.
func (d meshDomain) ElementCount() int { return d.mesh.ElementCount() }

// Dims implements spatial.Domain.
func (d meshDomain) Dims() int { return d.mesh.Dims() }

// Centroid implements spatial.Domain, treating vertex i's coordinates as
// its centroid.
func (d meshDomain) Centroid(i int) spatial.Point {
	return spatial.Point{Coords: d.mesh.VertexCoords(i)}
}
