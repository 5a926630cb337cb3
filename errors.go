// Copyright (c) 2026 The Triangulation Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulation

import "errors"

// ErrNoTriangulation is returned when fewer than 3 points are given,
// all distinct points are collinear, or seed selection otherwise
// cannot produce a right-handed triangle. No partial result is ever
// returned alongside it.
var ErrNoTriangulation = errors.New("triangulation: no triangulation exists for the given points")
