// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package triangulation computes the 2D Delaunay triangulation of a
// point set via sweep-hull: points are inserted in order of distance
// from a seed circumcenter, each insertion stitches new triangles
// into a visible arc of the advancing convex hull, and the Delaunay
// property is restored locally by edge flipping.
package triangulation

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/yodaldevoid/triangulation/dcel"
	"github.com/yodaldevoid/triangulation/hull"
)

// Mesh is the half-edge mesh produced by Triangulate.
type Mesh = dcel.Mesh

// hullGeo adapts this package's float32 kernel to hull.Geometry.
var hullGeo = hull.Geometry{
	Orientation: func(a, b, c hull.Point) float32 {
		return orientation(Point(a), Point(b), Point(c))
	},
	PseudoAngle: pseudoAngle,
	Circumcenter: func(a, b, c hull.Point) hull.Point {
		p := circumcenter(Point(a), Point(b), Point(c))
		return hull.Point(p)
	},
}

// Triangulate computes the Delaunay triangulation of points.
//
// It returns ErrNoTriangulation (wrapped with context) when there are
// fewer than 3 points, when all distinct points are collinear, or
// when every point is a coincident duplicate. Points that are exact
// near-duplicates (within machine epsilon on both axes) of the
// previously-inserted point in radial order are silently elided;
// the triangulation returned is of the remaining distinct set.
//
// points is borrowed read-only for the duration of the call and must
// remain live until Triangulate returns; it is never copied or
// mutated. Complexity is expected O(N log N), dominated by the radial
// sort, worst case O(N^2).
func Triangulate(points []Point, opts ...Option) (*Mesh, error) {
	var o Options
	for _, set := range opts {
		if err := set(&o); err != nil {
			return nil, err
		}
	}

	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrNoTriangulation, len(points))
	}
	for i, p := range points {
		if math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y)) ||
			math.IsInf(float64(p.X), 0) || math.IsInf(float64(p.Y), 0) {
			return nil, fmt.Errorf("%w: point %d has non-finite coordinates", ErrNoTriangulation, i)
		}
	}

	s0, s1, s2, ok := findSeedTriangle(points, o.parallelSeedSelection)
	if !ok {
		return nil, fmt.Errorf("%w: no non-collinear seed triangle", ErrNoTriangulation)
	}

	seedCenter := circumcenter(points[s0], points[s1], points[s2])

	indices := make([]int, 0, len(points)-3)
	for i := range points {
		if i == s0 || i == s1 || i == s2 {
			continue
		}
		indices = append(indices, i)
	}
	radialSort(points, indices, seedCenter, o.parallelRadialSort)

	maxTriangles := 2*len(points) - 5
	if maxTriangles < 1 {
		maxTriangles = 1
	}

	hullPoints := toHullPoints(points)
	tr := &triangulator{
		points:        points,
		hullPoints:    hullPoints,
		mesh:          dcel.NewMesh(maxTriangles),
		hull:          hull.New(hullGeo, s0, s1, s2, hullPoints, len(points)),
		stack:         make([]dcel.EdgeIndex, 0, defaultStackCapacity),
		stackCapacity: o.stackCapacity,
	}

	tr.mesh.AddTriangle(s0, s1, s2)

	prevPoint := -1
	for _, i := range indices {
		if prevPoint != -1 && approxEq(points[i], points[prevPoint]) {
			continue
		}
		tr.addPoint(i)
		prevPoint = i
	}

	return tr.mesh, nil
}

func toHullPoints(points []Point) []hull.Point {
	hp := make([]hull.Point, len(points))
	for i, p := range points {
		hp[i] = hull.Point(p)
	}
	return hp
}

// findSeedTriangle finds the point closest to the centroid, its
// nearest distinct neighbor, and the third point minimizing the
// circumradius of the resulting triangle, canonicalized to be
// right-handed.
func findSeedTriangle(points []Point, parallel bool) (s, n, t int, ok bool) {
	center := centroid(points)

	s, ok = argminDistanceSq(points, center, parallel, nil)
	if !ok {
		return 0, 0, 0, false
	}

	n, ok = argminDistanceSq(points, points[s], parallel, func(i int) bool {
		return i != s && distanceSq(points[i], points[s]) > epsilon
	})
	if !ok {
		return 0, 0, 0, false
	}

	t, ok = argminCircumradius(points, s, n, parallel)
	if !ok {
		return 0, 0, 0, false
	}

	if isRightHanded(points[s], points[n], points[t]) {
		return s, n, t, true
	}
	if isRightHanded(points[s], points[t], points[n]) {
		return s, t, n, true
	}
	return 0, 0, 0, false
}

func centroid(points []Point) Point {
	var sx, sy float32
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(points))
	return Point{X: sx / n, Y: sy / n}
}

// argminDistanceSq returns the lowest index i (passing filter, if
// non-nil) minimizing distanceSq(points[i], from); ties keep the
// lowest index already seen.
func argminDistanceSq(points []Point, from Point, parallel bool, filter func(int) bool) (int, bool) {
	if parallel && len(points) >= minParallelSize {
		return parallelArgmin(len(points), func(i int) (float32, bool) {
			if filter != nil && !filter(i) {
				return 0, false
			}
			return distanceSq(points[i], from), true
		})
	}

	best := -1
	var bestD float32
	for i, p := range points {
		if filter != nil && !filter(i) {
			continue
		}
		d := distanceSq(p, from)
		if best == -1 || d < bestD {
			best, bestD = i, d
		}
	}
	return best, best != -1
}

func argminCircumradius(points []Point, s, n int, parallel bool) (int, bool) {
	score := func(i int) (float32, bool) {
		if i == s || i == n {
			return 0, false
		}
		return circumradiusSq(points[s], points[n], points[i]), true
	}
	if parallel && len(points) >= minParallelSize {
		return parallelArgmin(len(points), score)
	}

	best := -1
	var bestR float32
	for i := range points {
		r, ok := score(i)
		if !ok {
			continue
		}
		if best == -1 || r < bestR {
			best, bestR = i, r
		}
	}
	return best, best != -1
}

// parallelArgmin shards [0, n) across GOMAXPROCS goroutines, each
// reducing its shard's lowest-index minimum, then merges shard winners
// single-threaded, preserving "lowest index wins" tie-breaking.
func parallelArgmin(n int, score func(int) (float32, bool)) (int, bool) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	type result struct {
		idx   int
		value float32
		ok    bool
	}
	results := make([]result, workers)
	shard := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			best := -1
			var bestV float32
			for i := lo; i < hi; i++ {
				v, ok := score(i)
				if !ok {
					continue
				}
				if best == -1 || v < bestV {
					best, bestV = i, v
				}
			}
			results[w] = result{idx: best, value: bestV, ok: best != -1}
		}(w, lo, hi)
	}
	wg.Wait()

	best := -1
	var bestV float32
	for _, r := range results {
		if !r.ok {
			continue
		}
		if best == -1 || r.value < bestV || (r.value == bestV && r.idx < best) {
			best, bestV = r.idx, r.value
		}
	}
	return best, best != -1
}

// radialSort orders indices by ascending distance to center. Ties may
// break arbitrarily.
func radialSort(points []Point, indices []int, center Point, parallel bool) {
	less := func(i, j int) bool {
		return distanceSq(points[indices[i]], center) < distanceSq(points[indices[j]], center)
	}

	if !parallel || len(indices) < minParallelSize {
		sort.Slice(indices, less)
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(indices) {
		workers = len(indices)
	}
	if workers < 1 {
		workers = 1
	}
	shard := (len(indices) + workers - 1) / workers

	type keyed struct {
		idx int
		d   float32
	}
	chunks := make([][]keyed, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if hi > len(indices) {
			hi = len(indices)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			chunk := make([]keyed, hi-lo)
			for k, i := range indices[lo:hi] {
				chunk[k] = keyed{idx: i, d: distanceSq(points[i], center)}
			}
			sort.Slice(chunk, func(a, b int) bool { return chunk[a].d < chunk[b].d })
			chunks[w] = chunk
		}(w, lo, hi)
	}
	wg.Wait()

	// k-way merge of the sorted shards back into indices.
	merged := make([]keyed, 0, len(indices))
	heads := make([]int, workers)
	for {
		bestW := -1
		for w, chunk := range chunks {
			if heads[w] >= len(chunk) {
				continue
			}
			if bestW == -1 || chunk[heads[w]].d < chunks[bestW][heads[bestW]].d {
				bestW = w
			}
		}
		if bestW == -1 {
			break
		}
		merged = append(merged, chunks[bestW][heads[bestW]])
		heads[bestW]++
	}
	for i, m := range merged {
		indices[i] = m.idx
	}
}

// triangulator holds the transient working state of a single
// Triangulate call: the mesh being built, the advancing hull, and the
// bounded-or-unbounded legalization work stack.
type triangulator struct {
	points     []Point
	hullPoints []hull.Point
	mesh       *dcel.Mesh
	hull       *hull.Hull

	stack         []dcel.EdgeIndex
	stackCapacity int // 0 means unbounded
}

// addPoint inserts points[i] into the triangulation: locate a visible
// hull edge, fan triangles forward (and, if indicated, backward)
// across the visible arc, legalizing each new triangle's far edge,
// then splice the point into the hull.
func (tr *triangulator) addPoint(i int) {
	point := tr.points[i]

	a, walkBack, found := tr.hull.FindVisibleEdge(tr.hullPoints, hull.Point(point))
	if !found {
		return // point lies inside the current hull; tolerated, not an error
	}

	b := tr.hull.Next(a)

	t := tr.mesh.AddTriangle(a, i, b)
	tr.mesh.LinkOption(t, -1)
	tr.mesh.LinkOption(t+1, -1)
	tr.mesh.LinkOption(t+2, tr.hull.HullEdge(a))

	newHullEdgeForI := tr.legalize(t + 2)
	tr.hull.SetHullEdge(i, newHullEdgeForI)
	tr.hull.SetHullEdge(a, t)

	// Forward walk.
	e := b
	for {
		n := tr.hull.Next(e)
		if !isRightHanded(point, tr.points[n], tr.points[e]) {
			break
		}

		nt := tr.mesh.AddTriangle(e, i, n)
		tr.mesh.LinkOption(nt, tr.hull.HullEdge(i))
		tr.mesh.LinkOption(nt+1, -1)
		tr.mesh.LinkOption(nt+2, tr.hull.HullEdge(e))

		newHullEdgeForI = tr.legalize(nt + 2)
		tr.hull.SetHullEdge(i, newHullEdgeForI)

		tr.hull.SetNext(e, e) // retire e
		e = n
	}
	b = e

	// Backward walk, only if the starting visible edge's predecessors
	// may also be visible.
	if walkBack {
		e = a
		for {
			p := tr.hull.Prev(e)
			if !isRightHanded(point, tr.points[e], tr.points[p]) {
				break
			}

			nt := tr.mesh.AddTriangle(p, i, e)
			tr.mesh.LinkOption(nt, -1)
			tr.mesh.LinkOption(nt+1, tr.hull.HullEdge(e))
			tr.mesh.LinkOption(nt+2, tr.hull.HullEdge(p))

			tr.legalize(nt + 2)

			tr.hull.SetHullEdge(p, nt)
			tr.hull.SetNext(e, e) // retire e
			e = p
		}
		a = e
	}

	tr.hull.SetNext(a, i)
	tr.hull.SetNext(i, b)
	tr.hull.SetPrev(b, i)
	tr.hull.SetPrev(i, a)
	tr.hull.Start = a

	tr.hull.AddHash(i, point)
	tr.hull.AddHash(a, tr.points[a])
}

// legalize restores the Delaunay property starting from edge e
// (interpreted as the edge opposite the newly-inserted point in its
// triangle). Returns an edge incident to the inserted point suitable
// for use as its hull edge.
func (tr *triangulator) legalize(e dcel.EdgeIndex) dcel.EdgeIndex {
	tr.stack = tr.stack[:0]
	tr.stack = append(tr.stack, e)

	var output dcel.EdgeIndex

	for len(tr.stack) > 0 {
		a := tr.stack[len(tr.stack)-1]
		tr.stack = tr.stack[:len(tr.stack)-1]

		ar := tr.mesh.PrevEdge(a)
		output = ar

		b := tr.mesh.Twin(a)
		if b == -1 {
			continue
		}

		br := tr.mesh.NextEdge(b)
		bl := tr.mesh.PrevEdge(b)

		triAR := tr.mesh.TrianglePoints(ar)
		p0, pr, pl := triAR[0], triAR[1], triAR[2]
		p1 := tr.mesh.TrianglePoints(bl)[0]

		if !inCircumcircle(tr.points[p0], tr.points[pr], tr.points[pl], tr.points[p1]) {
			continue
		}

		tr.mesh.SetVertex(a, p1)
		tr.mesh.SetVertex(b, p0)

		hbl := tr.mesh.Twin(bl)

		tr.mesh.LinkOption(a, hbl)
		tr.mesh.LinkOption(b, tr.mesh.Twin(ar))
		tr.mesh.Link(ar, bl)

		if hbl == -1 {
			tr.hull.RetargetHullEdge(bl, a)
		}

		if tr.stackCapacity > 0 && len(tr.stack) >= tr.stackCapacity-1 {
			continue
		}

		tr.stack = append(tr.stack, br, a)
	}

	return output
}
