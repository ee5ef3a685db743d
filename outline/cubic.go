// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "math"

// DefaultCubicTolerance is the default maximum deviation, in font design
// units, between a cubic segment and its quadratic approximation.
const DefaultCubicTolerance float32 = 0.5

// maxCubicSplits bounds the number of quadratics emitted per cubic.
const maxCubicSplits = 64

type vec2 struct {
	x, y float64
}

func toVec(p Point) vec2 { return vec2{float64(p.X), float64(p.Y)} }

func (p vec2) add(q vec2) vec2    { return vec2{p.x + q.x, p.y + q.y} }
func (p vec2) sub(q vec2) vec2    { return vec2{p.x - q.x, p.y - q.y} }
func (p vec2) mul(s float64) vec2 { return vec2{p.x * s, p.y * s} }
func (p vec2) length() float64    { return math.Hypot(p.x, p.y) }
func (p vec2) point() Point       { return Point{float32(p.x), float32(p.y)} }

// cubicBez is a cubic Bezier curve with start p0, controls p1 and p2, end p3.
type cubicBez struct {
	p0, p1, p2, p3 vec2
}

func newCubic(a, b, c, d Point) cubicBez {
	return cubicBez{toVec(a), toVec(b), toVec(c), toVec(d)}
}

// quadControl returns the control point of the single quadratic that best
// matches the cubic at both ends.
func (c cubicBez) quadControl() vec2 {
	return c.p1.add(c.p2).mul(3).sub(c.p0).sub(c.p3).mul(0.25)
}

// thirdDifference returns |p3 - 3p2 + 3p1 - p0|.
func (c cubicBez) thirdDifference() float64 {
	return c.p3.sub(c.p2.mul(3)).add(c.p1.mul(3)).sub(c.p0).length()
}

// eval evaluates the curve at parameter t using the Bernstein form.
func (c cubicBez) eval(t float64) vec2 {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	return vec2{
		x: mt2*mt*c.p0.x + 3*mt2*t*c.p1.x + 3*mt*t2*c.p2.x + t2*t*c.p3.x,
		y: mt2*mt*c.p0.y + 3*mt2*t*c.p1.y + 3*mt*t2*c.p2.y + t2*t*c.p3.y,
	}
}

// subsegment returns the portion of the curve from t0 to t1.
func (c cubicBez) subsegment(t0, t1 float64) cubicBez {
	p0 := c.eval(t0)
	p3 := c.eval(t1)

	d0 := c.p1.sub(c.p0)
	d1 := c.p2.sub(c.p1)
	d2 := c.p3.sub(c.p2)
	deriv := func(t float64) vec2 {
		mt := 1.0 - t
		return d0.mul(3 * mt * mt).add(d1.mul(6 * mt * t)).add(d2.mul(3 * t * t))
	}

	scale := (t1 - t0) / 3.0
	return cubicBez{
		p0: p0,
		p1: p0.add(deriv(t0).mul(scale)),
		p2: p3.sub(deriv(t1).mul(scale)),
		p3: p3,
	}
}

// cubicSplits returns how many equal parameter pieces keep the quadratic
// approximation within tolerance. The single-quadratic error of a cubic is
// bounded by sqrt(3)/36 * |p3 - 3p2 + 3p1 - p0| and shrinks with the cube
// of the number of pieces.
func cubicSplits(c cubicBez, tolerance float64) int {
	if tolerance <= 0 {
		return maxCubicSplits
	}
	bound := math.Sqrt(3) / 36 * c.thirdDifference()
	n := int(math.Ceil(math.Cbrt(bound / tolerance)))
	return min(max(n, 1), maxCubicSplits)
}

// CubicToQuads appends to dst the QuadTo commands approximating the cubic
// segment that starts at p0, has controls c1 and c2 and ends at p3. The
// last emitted end point is exactly p3, so the path stays continuous.
func CubicToQuads(dst []Command, p0, c1, c2, p3 Point, tolerance float32) []Command {
	c := newCubic(p0, c1, c2, p3)
	n := cubicSplits(c, float64(tolerance))
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		seg := c.subsegment(t0, t1)
		end := seg.p3.point()
		if i == n-1 {
			end = p3
		}
		dst = append(dst, Command{
			Op:   OpQuadTo,
			Args: [2]Point{seg.quadControl().point(), end},
		})
	}
	return dst
}
