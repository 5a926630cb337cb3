// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulation

import "math"

// epsilon is the default tolerance used by approxEq, matching 32-bit
// float machine epsilon.
const epsilon = float32(1.1920929e-7)

// Point is a 2D point identified by its index in the caller's slice.
// The triangulator never mutates or copies points into its own store.
type Point struct {
	X, Y float32
}

// PointIndex identifies a point by its position in the caller's slice.
type PointIndex = int

// Triangle is an ordered triple of points. It is right-handed
// (counter-clockwise) iff orientation(A, B, C) > 0.
type Triangle struct {
	A, B, C Point
}

// distanceSq returns the squared Euclidean distance between a and b.
func distanceSq(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// approxEq reports whether a and b are within epsilon on both axes.
// This is a coincidence predicate for near-duplicate suppression, not
// a general-purpose equality.
func approxEq(a, b Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return abs32(dx) <= epsilon && abs32(dy) <= epsilon
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// orientation returns the signed area of the cross product of A-B and
// C-B. Positive means right-handed (CCW), negative left-handed (CW),
// zero degenerate (collinear). CCW here is as seen with the y axis
// pointing down: (0,0), (0,1), (1,0) is right-handed, and with y
// pointing up that triangle turns clockwise.
func orientation(a, b, c Point) float32 {
	return (a.X-b.X)*(c.Y-b.Y) - (a.Y-b.Y)*(c.X-b.X)
}

// isRightHanded reports whether the triangle (a, b, c) is CCW.
func isRightHanded(a, b, c Point) bool {
	return orientation(a, b, c) > 0
}

// circumcircleDelta computes the offset from A to the circumcenter of
// the triangle (a, b, c). Returns (+Inf, +Inf) when the triangle is
// degenerate (collinear), i.e. when the denominator d would be zero.
func circumcircleDelta(a, b, c Point) (float32, float32) {
	px := b.X - a.X
	py := b.Y - a.Y
	qx := c.X - a.X
	qy := c.Y - a.Y

	p2 := px*px + py*py
	q2 := qx*qx + qy*qy
	d := 2 * (px*qy - py*qx)

	if d == 0 {
		inf := float32(math.Inf(1))
		return inf, inf
	}

	dx := (qy*p2 - py*q2) / d
	dy := (px*q2 - qx*p2) / d
	return dx, dy
}

// circumcenter returns the center of the circle passing through a, b, c.
func circumcenter(a, b, c Point) Point {
	dx, dy := circumcircleDelta(a, b, c)
	return Point{X: a.X + dx, Y: a.Y + dy}
}

// circumradiusSq returns the squared radius of the circumcircle of (a, b, c).
func circumradiusSq(a, b, c Point) float32 {
	dx, dy := circumcircleDelta(a, b, c)
	return dx*dx + dy*dy
}

// inCircumcircle reports whether p lies strictly inside the
// circumcircle of the right-handed triangle (a, b, c). Behavior is
// undefined if (a, b, c) is not right-handed; callers must canonicalize.
func inCircumcircle(a, b, c, p Point) bool {
	dx := a.X - p.X
	dy := a.Y - p.Y
	ex := b.X - p.X
	ey := b.Y - p.Y
	fx := c.X - p.X
	fy := c.Y - p.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	det := dx*(ey*cp-bp*fy) - dy*(ex*cp-bp*fx) + ap*(ex*fy-ey*fx)
	return det < 0
}

// pseudoAngle is a monotone surrogate for atan2(dy, dx), returning a
// value in [0, 1). It is cheap to compute and sufficient for ordering
// and hashing; ties need not break monotonically with the real angle.
func pseudoAngle(dx, dy float32) float32 {
	var p float32
	denom := abs32(dx) + abs32(dy)
	if denom != 0 {
		p = dx / denom
	}

	if dy > 0 {
		// With dx < 0 and a tiny dy, rounding can make this exactly 1;
		// that is the wrap point, reported as 0.
		if r := (3 - p) / 4; r < 1 {
			return r
		}
		return 0
	}
	return (1 + p) / 4
}
