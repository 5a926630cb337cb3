// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package dcel implements a compact half-edge mesh (doubly-connected
// edge list) over triangles, indexed by flat edge id.
//
// Triangle t owns edges 3t, 3t+1, 3t+2 in counter-clockwise order.
// The twin table gives cross-triangle adjacency; a lazily-built
// point-to-edge reverse map enables fan traversal around a vertex.
package dcel

import "fmt"

// EdgeIndex identifies a directed half-edge by its position in the
// flat vertex/twin arrays.
type EdgeIndex = int

// noEdge is the sentinel for "this edge has no twin" (a hull edge).
const noEdge EdgeIndex = -1

// Mesh is a flat half-edge mesh of triangles.
type Mesh struct {
	vertex []int
	twin   []EdgeIndex

	pointToEdge []EdgeIndex // lazy, built by InitPointToEdge
}

// NewMesh returns a Mesh with arrays reserved for up to maxTriangles triangles.
func NewMesh(maxTriangles int) *Mesh {
	return &Mesh{
		vertex: make([]int, 0, maxTriangles*3),
		twin:   make([]EdgeIndex, 0, maxTriangles*3),
	}
}

// NumTriangles returns the number of triangles currently in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.vertex) / 3
}

// AddTriangle appends a triangle from the three given point indices,
// in counter-clockwise order, and returns its first edge id (3t).
// The caller guarantees CCW order.
func (m *Mesh) AddTriangle(a, b, c int) EdgeIndex {
	t := EdgeIndex(len(m.vertex))
	m.vertex = append(m.vertex, a, b, c)
	m.twin = append(m.twin, noEdge, noEdge, noEdge)
	return t
}

// Link marks e and f as twins (opposite half-edges across a shared
// undirected edge). Panics if e == f.
func (m *Mesh) Link(e, f EdgeIndex) {
	if e == f {
		panic(fmt.Sprintf("dcel: Link: e == f == %d", e))
	}
	m.twin[e] = f
	m.twin[f] = e
}

// Unlink clears e's twin, and f's twin too if e had one.
func (m *Mesh) Unlink(e EdgeIndex) {
	if f := m.twin[e]; f != noEdge {
		m.twin[f] = noEdge
	}
	m.twin[e] = noEdge
}

// LinkOption links e and maybeF if maybeF is present (!= -1),
// otherwise unlinks e. This is the atomic pair needed for
// boundary-aware re-linking during legalization.
func (m *Mesh) LinkOption(e EdgeIndex, maybeF EdgeIndex) {
	if maybeF == noEdge {
		m.Unlink(e)
		return
	}
	m.Link(e, maybeF)
}

// Twin returns the twin edge id for e, or -1 if e lies on the hull.
func (m *Mesh) Twin(e EdgeIndex) EdgeIndex {
	return m.twin[e]
}

// NextEdge returns the edge following e counter-clockwise around its triangle.
func (m *Mesh) NextEdge(e EdgeIndex) EdgeIndex {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevEdge returns the edge preceding e counter-clockwise around its triangle.
func (m *Mesh) PrevEdge(e EdgeIndex) EdgeIndex {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// TriangleFirstEdge returns the id of the first edge (3t) of the
// triangle that owns e.
func (m *Mesh) TriangleFirstEdge(e EdgeIndex) EdgeIndex {
	return e - e%3
}

// Vertex returns the origin point index of edge e.
func (m *Mesh) Vertex(e EdgeIndex) int {
	return m.vertex[e]
}

// SetVertex overwrites the origin point index of edge e. Used only by
// the legalize flip, which rewires two edges in place.
func (m *Mesh) SetVertex(e EdgeIndex, p int) {
	m.vertex[e] = p
}

// TrianglePoints returns the three point indices of the triangle
// owning e, starting at e's own origin.
func (m *Mesh) TrianglePoints(e EdgeIndex) [3]int {
	a := e
	b := m.NextEdge(a)
	c := m.NextEdge(b)
	return [3]int{m.vertex[a], m.vertex[b], m.vertex[c]}
}

// TriangleEdges returns the three edge ids of the triangle owning e,
// starting at e itself.
func (m *Mesh) TriangleEdges(e EdgeIndex) [3]EdgeIndex {
	a := e
	b := m.NextEdge(a)
	c := m.NextEdge(b)
	return [3]EdgeIndex{a, b, c}
}

// InitPointToEdge builds the lazy point -> incident-edge reverse map,
// giving every point some edge whose origin is that point. Later
// writes for the same point overwrite earlier ones; any incident edge
// works as a fan-traversal starting point.
func (m *Mesh) InitPointToEdge(numPoints int) {
	m.pointToEdge = make([]EdgeIndex, numPoints)
	for i := range m.pointToEdge {
		m.pointToEdge[i] = noEdge
	}
	for e, p := range m.vertex {
		m.pointToEdge[p] = e
	}
}

// TrianglesAroundPoint returns an iterator (Go 1.23 range-over-func)
// over the edges incident to point p, i.e. with origin p. It is a
// fused single-pass traversal: forward via twin/next until the hull
// is reached or the start edge repeats, then (for hull points)
// backward via twin/prev to reach the other side of the fan. Each
// incident edge is yielded exactly once; the start edge is never
// re-emitted. InitPointToEdge must have been called first.
func (m *Mesh) TrianglesAroundPoint(p int) func(yield func(EdgeIndex) bool) {
	return func(yield func(EdgeIndex) bool) {
		if m.pointToEdge == nil {
			panic("dcel: TrianglesAroundPoint: InitPointToEdge was not called")
		}
		e0 := m.pointToEdge[p]
		if e0 == noEdge {
			return
		}

		if !yield(e0) {
			return
		}

		e := e0
		for {
			t := m.twin[e]
			if t == noEdge {
				break
			}
			e = m.NextEdge(t)
			if e == e0 {
				return
			}
			if !yield(e) {
				return
			}
		}

		e = e0
		for {
			t := m.twin[m.PrevEdge(e)]
			if t == noEdge {
				return
			}
			e = t
			if e == e0 {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
