// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"github.com/gogpu/glyphband/outline"
)

func move(x, y float32) outline.Command {
	return outline.Command{Op: outline.OpMoveTo, Args: [2]outline.Point{{X: x, Y: y}}}
}

func line(x, y float32) outline.Command {
	return outline.Command{Op: outline.OpLineTo, Args: [2]outline.Point{{X: x, Y: y}}}
}

func quad(cx, cy, x, y float32) outline.Command {
	return outline.Command{Op: outline.OpQuadTo, Args: [2]outline.Point{{X: cx, Y: cy}, {X: x, Y: y}}}
}

func closePath() outline.Command {
	return outline.Command{Op: outline.OpClose}
}

// memSource is an in-memory outline.Source. A nil outline means the glyph
// has no geometry; ids in cubic emit a cubic segment.
type memSource struct {
	upm    float32
	glyphs [][]outline.Command
	cubic  map[int]bool
}

func (s *memSource) NumGlyphs() int      { return len(s.glyphs) }
func (s *memSource) UnitsPerEm() float32 { return s.upm }

func (s *memSource) Decompose(gid int, rec *outline.Recorder) (outline.Rect, bool, error) {
	if gid < 0 || gid >= len(s.glyphs) {
		return outline.Rect{}, false, outline.ErrGlyphRange
	}
	if s.cubic[gid] {
		rec.MoveTo(0, 0)
		return outline.Rect{}, false, rec.CubeTo(1, 1, 2, 2, 3, 0)
	}
	cmds := s.glyphs[gid]
	if len(cmds) == 0 {
		return outline.Rect{}, false, nil
	}
	for _, c := range cmds {
		switch c.Op {
		case outline.OpMoveTo:
			rec.MoveTo(c.Args[0].X, c.Args[0].Y)
		case outline.OpLineTo:
			rec.LineTo(c.Args[0].X, c.Args[0].Y)
		case outline.OpQuadTo:
			rec.QuadTo(c.Args[0].X, c.Args[0].Y, c.Args[1].X, c.Args[1].Y)
		case outline.OpClose:
			rec.Close()
		}
	}
	return outline.Bounds(cmds), true, nil
}

// triangle is the outline (0,0), (1,0), (0,1) closed implicitly.
func triangle() []outline.Command {
	return []outline.Command{move(0, 0), line(1, 0), line(0, 1), closePath()}
}

// square is an axis-aligned square of the given size at the origin.
func square(size float32) []outline.Command {
	return []outline.Command{move(0, 0), line(size, 0), line(size, size), line(0, size), closePath()}
}

// blob is a closed quadratic shape with enough curves for several bands.
func blob(n int, r float32) []outline.Command {
	cmds := []outline.Command{move(r, 0)}
	for i := 0; i < n; i++ {
		a := float32(i+1) / float32(n)
		// Zig-zag around a box so every segment spans both axes.
		x := r * (1 - a)
		y := r * a
		if i%2 == 0 {
			cmds = append(cmds, quad(x+r/4, y+r/4, x, y))
		} else {
			cmds = append(cmds, line(x, y))
		}
	}
	return append(cmds, closePath())
}
