// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulation

import "github.com/yodaldevoid/triangulation/dcel"

// EdgeIndex identifies a directed half-edge in a Mesh.
type EdgeIndex = dcel.EdgeIndex

// Triangles returns an iterator (Go 1.23 range-over-func) over every
// triangle in mesh as a Triangle value, looking up each vertex
// through points (the same slice passed to Triangulate).
func Triangles(mesh *Mesh, points []Point) func(yield func(Triangle) bool) {
	return func(yield func(Triangle) bool) {
		for t := 0; t < mesh.NumTriangles(); t++ {
			vs := mesh.TrianglePoints(t * 3)
			tri := Triangle{A: points[vs[0]], B: points[vs[1]], C: points[vs[2]]}
			if !yield(tri) {
				return
			}
		}
	}
}
