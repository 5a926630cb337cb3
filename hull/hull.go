// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull implements the advancing convex hull used by the
// sweep-hull triangulator: a circular doubly-linked list of hull
// point indices plus an angular hash table that accelerates
// visible-edge lookup to near-O(1) amortized.
package hull

import "math"

// EdgeIndex mirrors dcel.EdgeIndex without importing the dcel
// package, keeping hull free of a dependency on the mesh
// representation it merely references edge ids into.
type EdgeIndex = int

// noEdge marks the absence of a boundary edge reference.
const noEdge EdgeIndex = -1

// Point is the minimal 2D point shape the hull needs.
type Point struct {
	X, Y float32
}

// Geometry is injected by the caller so this package stays free of a
// dependency on the root package's orientation/pseudo-angle kernel.
type Geometry struct {
	// Orientation returns >0 for CCW (a, b, c), <0 for CW, 0 collinear.
	Orientation func(a, b, c Point) float32
	// PseudoAngle is a monotone surrogate for atan2(dy, dx) in [0, 1).
	PseudoAngle func(dx, dy float32) float32
	// Circumcenter returns the center of the circle through a, b, c.
	Circumcenter func(a, b, c Point) Point
}

// Hull is the advancing, counter-clockwise convex hull over a fixed
// set of N points (identified by index into a caller-owned slice).
type Hull struct {
	geo Geometry

	next     []int // next[p]: CCW successor of p on the hull
	prev     []int // prev[p]: CCW predecessor of p on the hull
	hullEdge []EdgeIndex

	hashTable []int // hash[k]: a hint point index, or -1

	center Point
	Start  int
}

// New builds a Hull from a seed triangle (s0, s1, s2), already in CCW
// order, over a point set of size n (used to size the angular hash
// table as ceil(sqrt(n))).
func New(geo Geometry, s0, s1, s2 int, points []Point, n int) *Hull {
	tableSize := int(math.Ceil(math.Sqrt(float64(n))))
	if tableSize < 1 {
		tableSize = 1
	}

	h := &Hull{
		geo:       geo,
		next:      make([]int, n),
		prev:      make([]int, n),
		hullEdge:  make([]EdgeIndex, n),
		hashTable: make([]int, tableSize),
		center:    geo.Circumcenter(points[s0], points[s1], points[s2]),
		Start:     s0,
	}
	for i := range h.hashTable {
		h.hashTable[i] = -1
	}

	h.next[s0], h.next[s1], h.next[s2] = s1, s2, s0
	h.prev[s0], h.prev[s1], h.prev[s2] = s2, s0, s1

	h.hullEdge[s0] = 0
	h.hullEdge[s1] = 1
	h.hullEdge[s2] = 2

	h.AddHash(s0, points[s0])
	h.AddHash(s1, points[s1])
	h.AddHash(s2, points[s2])

	return h
}

// Next returns the hull successor of p.
func (h *Hull) Next(p int) int { return h.next[p] }

// Prev returns the hull predecessor of p.
func (h *Hull) Prev(p int) int { return h.prev[p] }

// SetNext sets the hull successor of p. Setting next[p] = p retires p
// (the dead-slot sentinel); consumers test Next(p) == p to detect it.
func (h *Hull) SetNext(p, nxt int) { h.next[p] = nxt }

// SetPrev sets the hull predecessor of p.
func (h *Hull) SetPrev(p, prv int) { h.prev[p] = prv }

// IsDead reports whether p has been removed from the hull.
func (h *Hull) IsDead(p int) bool { return h.next[p] == p }

// HullEdge returns the boundary edge id incident to hull point p.
func (h *Hull) HullEdge(p int) EdgeIndex { return h.hullEdge[p] }

// SetHullEdge sets the boundary edge id incident to hull point p.
func (h *Hull) SetHullEdge(p int, e EdgeIndex) { h.hullEdge[p] = e }

// AddHash stamps p into its angular hash slot, keyed by the
// pseudo-angle of p (seen from the hull's fixed center). Collisions
// overwrite silently; this is a probe hint, not a set.
func (h *Hull) AddHash(p int, point Point) {
	k := h.angularSlot(point)
	h.hashTable[k] = p
}

func (h *Hull) angularSlot(point Point) int {
	size := len(h.hashTable)
	angle := h.geo.PseudoAngle(point.X-h.center.X, point.Y-h.center.Y)
	return int(angle*float32(size)) % size
}

// FindVisibleEdge locates a hull point p such that the directed edge
// p -> Next(p) is visible from P (P sees it from outside the hull).
// Returns (p, walkBack, true) on success; walkBack indicates whether
// CCW predecessors of p may also be visible and need to be walked by
// the caller. Returns (0, false, false) if no visible edge was found
// (P lies inside or on the current hull).
func (h *Hull) FindVisibleEdge(points []Point, p Point) (start int, walkBack bool, ok bool) {
	size := len(h.hashTable)
	k := h.angularSlot(p)

	found := -1
	for i := 0; i < size; i++ {
		slot := h.hashTable[(k+i)%size]
		if slot == -1 {
			continue
		}
		if h.next[slot] != slot { // alive
			found = slot
			break
		}
	}
	if found == -1 {
		return 0, false, false
	}

	start = h.prev[found]
	edge := start
	for {
		nxt := h.next[edge]
		if h.geo.Orientation(p, points[edge], points[nxt]) < 0 {
			break
		}
		edge = nxt
		if edge == start {
			return 0, false, false
		}
	}

	return edge, edge == start, true
}

// RetargetHullEdge walks the hull starting from Start, looking for
// the point whose HullEdge equals oldEdge, and repoints it to
// newEdge. Used when legalize replaces a hull-boundary edge. The walk
// aborts if it returns to Start or hits a retired (dead) slot without
// finding a match.
func (h *Hull) RetargetHullEdge(oldEdge, newEdge EdgeIndex) {
	edge := h.Start
	for {
		if h.hullEdge[edge] == oldEdge {
			h.hullEdge[edge] = newEdge
			return
		}
		next := h.next[edge]
		if next == h.Start || next == edge {
			return
		}
		edge = next
	}
}
