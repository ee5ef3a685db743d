// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

// Curve is a quadratic Bezier segment packed as [c1x, c1y, ex, ey] in
// glyph-local em units. The start point is implicit: it is the end point of
// the previous curve in the same glyph run.
//
// A move is encoded as a sentinel curve [-1, -1, x, y]. It carries no
// geometry, only the start point of the next contour.
type Curve [4]float32

// sentinelCoord marks the control point of a move curve. Normalized
// coordinates are never negative, so it cannot collide with geometry.
const sentinelCoord float32 = -1

// MoveCurve returns the sentinel curve that starts a contour at (x, y).
func MoveCurve(x, y float32) Curve {
	return Curve{sentinelCoord, sentinelCoord, x, y}
}

// QuadCurve returns a geometric curve with control (cx, cy) ending at (x, y).
func QuadCurve(cx, cy, x, y float32) Curve {
	return Curve{cx, cy, x, y}
}

// IsMove reports whether c is a contour-start sentinel.
func (c Curve) IsMove() bool {
	return c[0] == sentinelCoord && c[1] == sentinelCoord
}

// Control returns the control point.
func (c Curve) Control() (x, y float32) {
	return c[0], c[1]
}

// End returns the end point.
func (c Curve) End() (x, y float32) {
	return c[2], c[3]
}

// countGeometric returns the number of non-sentinel curves in a run.
func countGeometric(run []Curve) int {
	n := 0
	for _, c := range run {
		if !c.IsMove() {
			n++
		}
	}
	return n
}
