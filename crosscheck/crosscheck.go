// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package crosscheck independently recomputes a 2D Delaunay
// triangulation via the paraboloid-lift trick, to cross-validate
// triangulation.Triangulate's sweep-hull output in tests: lifting
// each point (x, y) to (x, y, x^2+y^2) turns the 2D Delaunay
// triangulation into the lower faces of the 3D convex hull of the
// lifted points (Brown, 1979).
package crosscheck

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/yodaldevoid/triangulation"
)

const defaultEps = 1e-7

// Options holds configuration for LiftedConvexHull.
type Options struct {
	Eps float64
}

// Option is a functional option for LiftedConvexHull.
type Option func(*Options) error

// WithEps sets the numerical tolerance passed through to the
// underlying 3D convex hull construction. It must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// LiftedConvexHull returns the Delaunay triangulation of points as a
// set of point-index triples, computed by lifting points onto the
// paraboloid z = x^2 + y^2 and taking the downward-facing faces of
// their 3D convex hull. It is not meant for production use in place
// of Triangulate: it pays for a full 3D hull construction rather than
// an advancing 2D hull, and returns no half-edge adjacency. It exists
// so tests can check Triangulate's output against a structurally
// unrelated construction of the same mathematical object.
func LiftedConvexHull(points []triangulation.Point, opts ...Option) ([][3]int, error) {
	o := Options{Eps: defaultEps}
	for _, set := range opts {
		if err := set(&o); err != nil {
			return nil, err
		}
	}

	if len(points) < 3 {
		return nil, errors.New("crosscheck: need at least 3 points")
	}

	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		x, y := float64(p.X), float64(p.Y)
		lifted[i] = r3.Vector{X: x, Y: y, Z: x*x + y*y}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, o.Eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("crosscheck: quickhull returned a non-triangular hull")
	}

	var lower [][3]int
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		// Faces whose outward normal has a non-negative z component
		// belong to the upper hull; the lift has no overhangs, so
		// every face is either strictly upper or strictly lower.
		if faceNormalZ(lifted[a], lifted[b], lifted[c]) >= 0 {
			continue
		}
		lower = append(lower, [3]int{a, b, c})
	}

	return lower, nil
}

func faceNormalZ(a, b, c r3.Vector) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac).Z
}
