// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package testutil generates deterministic point clouds for the
// triangulation module's tests and benchmarks.
package testutil

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"

	"github.com/yodaldevoid/triangulation"
)

// RandomCloud generates cnt points uniformly distributed in
// [0, side) x [0, side). The seed parameter ensures reproducibility.
func RandomCloud(cnt int, side float64, seed int64) []triangulation.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]triangulation.Point, cnt)

	for i := range cnt {
		unit := r2.Point{X: random.Float64(), Y: random.Float64()}
		v := unit.Mul(side)
		points[i] = triangulation.Point{X: float32(v.X), Y: float32(v.Y)}
	}

	return points
}

// CirclePoints generates cnt points evenly spaced on a circle of the
// given radius centered at the origin, at angles 2*pi*k/cnt.
func CirclePoints(cnt int, radius float64) []triangulation.Point {
	points := make([]triangulation.Point, cnt)
	for k := range cnt {
		theta := 2 * math.Pi * float64(k) / float64(cnt)
		unit := r2.Point{X: math.Cos(theta), Y: math.Sin(theta)}
		v := unit.Mul(radius)
		points[k] = triangulation.Point{X: float32(v.X), Y: float32(v.Y)}
	}
	return points
}
