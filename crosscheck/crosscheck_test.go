// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package crosscheck

import (
	"testing"

	"github.com/yodaldevoid/triangulation"
	"github.com/yodaldevoid/triangulation/testutil"
)

func TestLiftedConvexHullTriangleCount(t *testing.T) {
	points := []triangulation.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}

	mesh, err := triangulation.Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}

	lower, err := LiftedConvexHull(points)
	if err != nil {
		t.Fatalf("LiftedConvexHull() error = %v", err)
	}

	if got, want := len(lower), mesh.NumTriangles(); got != want {
		t.Errorf("LiftedConvexHull produced %d triangles, Triangulate produced %d", got, want)
	}
}

func TestLiftedConvexHullMatchesRandomCloud(t *testing.T) {
	points := testutil.RandomCloud(200, 10000, 11)

	mesh, err := triangulation.Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}

	lower, err := LiftedConvexHull(points)
	if err != nil {
		t.Fatalf("LiftedConvexHull() error = %v", err)
	}

	if got, want := len(lower), mesh.NumTriangles(); got != want {
		t.Errorf("LiftedConvexHull produced %d triangles, Triangulate produced %d", got, want)
	}

	// Every lifted-hull triangle must also appear (as an unordered
	// vertex set) among Triangulate's output.
	meshSets := make(map[[3]int]bool, mesh.NumTriangles())
	for tri := 0; tri < mesh.NumTriangles(); tri++ {
		vs := mesh.TrianglePoints(tri * 3)
		meshSets[sorted3(vs)] = true
	}
	for _, tri := range lower {
		if !meshSets[sorted3(tri)] {
			t.Errorf("lifted-hull triangle %v not found in Triangulate output", tri)
		}
	}
}

func TestLiftedConvexHullRejectsTooFewPoints(t *testing.T) {
	_, err := LiftedConvexHull([]triangulation.Point{{0, 0}, {1, 0}})
	if err == nil {
		t.Errorf("LiftedConvexHull(2 points) = nil error, want error")
	}
}

func sorted3(v [3]int) [3]int {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	return v
}
