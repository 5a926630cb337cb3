// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandomCloudLength(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := RandomCloud(tt.cnt, 100, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("RandomCloud(%v, 100, %v) len = %v, want %v", tt.cnt, tt.seed, len(points), tt.cnt)
			}
		})
	}
}

func TestRandomCloudWithinBounds(t *testing.T) {
	const (
		cnt  = 200
		side = 50.0
		seed = 7
	)
	points := RandomCloud(cnt, side, seed)
	for i, p := range points {
		if p.X < 0 || p.X >= side || p.Y < 0 || p.Y >= side {
			t.Errorf("RandomCloud(...)[%d] = %v, want within [0, %v)", i, p, side)
		}
	}
}

func TestRandomCloudDeterminism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := RandomCloud(cnt, 100, seed)
	b := RandomCloud(cnt, 100, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("RandomCloud(%v, 100, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestCirclePointsOnCircle(t *testing.T) {
	const (
		cnt     = 20
		radius  = 1000.0
		epsilon = 1e-3
	)
	points := CirclePoints(cnt, radius)
	if len(points) != cnt {
		t.Fatalf("CirclePoints(%v, %v) len = %v, want %v", cnt, radius, len(points), cnt)
	}
	for i, p := range points {
		dist := math.Hypot(float64(p.X), float64(p.Y))
		if math.Abs(dist-radius) > epsilon {
			t.Errorf("CirclePoints(...)[%d] distance from origin = %v, want ≈%v", i, dist, radius)
		}
	}
}
