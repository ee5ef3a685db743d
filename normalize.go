// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import "github.com/gogpu/glyphband/outline"

// normalizer maps design-unit points into glyph-local em space.
type normalizer struct {
	upm     float32
	originX float32
	originY float32
}

func newNormalizer(upm float32, bounds outline.Rect) normalizer {
	return normalizer{
		upm:     upm,
		originX: bounds.MinX / upm,
		originY: bounds.MinY / upm,
	}
}

func (n normalizer) point(p outline.Point) (float32, float32) {
	return p.X/n.upm - n.originX, p.Y/n.upm - n.originY
}

// size returns the bounding box extent in em units, consistent with the
// normalized coordinate range [0, width] x [0, height].
func (n normalizer) size(bounds outline.Rect) (width, height float32) {
	return bounds.MaxX/n.upm - n.originX, bounds.MaxY/n.upm - n.originY
}

// Normalize converts one glyph's outline commands into a curve run,
// appending to dst. Points are divided by upm and shifted so the bounding
// box minimum is the local origin.
//
// A move becomes a sentinel curve. A line becomes a quadratic whose control
// point is the exact midpoint of its ends. Close adds a closing line when
// the pen is away from the contour start. Commands before the first move
// start at the local origin.
//
// It returns the extended slice and the number of geometric curves added.
func Normalize(dst []Curve, cmds []outline.Command, upm float32, bounds outline.Rect) ([]Curve, int) {
	n := newNormalizer(upm, bounds)
	geometric := 0

	var curX, curY, startX, startY float32
	lineTo := func(x, y float32) {
		dst = append(dst, QuadCurve((curX+x)*0.5, (curY+y)*0.5, x, y))
		geometric++
		curX, curY = x, y
	}

	for _, c := range cmds {
		switch c.Op {
		case outline.OpMoveTo:
			x, y := n.point(c.Args[0])
			dst = append(dst, MoveCurve(x, y))
			curX, curY = x, y
			startX, startY = x, y

		case outline.OpLineTo:
			lineTo(n.point(c.Args[0]))

		case outline.OpQuadTo:
			cx, cy := n.point(c.Args[0])
			x, y := n.point(c.Args[1])
			dst = append(dst, QuadCurve(cx, cy, x, y))
			geometric++
			curX, curY = x, y

		case outline.OpClose:
			if curX != startX || curY != startY {
				lineTo(startX, startY)
			}
		}
	}
	return dst, geometric
}
