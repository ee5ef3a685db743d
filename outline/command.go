// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "math"

// Point is an outline point in font design units.
type Point struct {
	X, Y float32
}

// Op is the type of an outline command.
type Op uint8

const (
	// OpMoveTo starts a new contour at Args[0].
	OpMoveTo Op = iota

	// OpLineTo draws a straight segment to Args[0].
	OpLineTo

	// OpQuadTo draws a quadratic Bezier with control Args[0] and end Args[1].
	OpQuadTo

	// OpClose ends the current contour.
	OpClose
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Command is a single outline event.
//
//   - MoveTo: Args[0] is the target point
//   - LineTo: Args[0] is the target point
//   - QuadTo: Args[0] is the control point, Args[1] is the target
//   - Close: no arguments
type Command struct {
	Op   Op
	Args [2]Point
}

// End returns the point the pen rests on after the command.
// Close returns the zero point; the caller tracks contour starts.
func (c Command) End() Point {
	switch c.Op {
	case OpMoveTo, OpLineTo:
		return c.Args[0]
	case OpQuadTo:
		return c.Args[1]
	default:
		return Point{}
	}
}

// Rect is an axis-aligned box in font design units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// EmptyRect returns an inverted rectangle that any Extend call overwrites.
func EmptyRect() Rect {
	return Rect{
		MinX: math.MaxFloat32, MinY: math.MaxFloat32,
		MaxX: -math.MaxFloat32, MaxY: -math.MaxFloat32,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle encloses no point.
func (r Rect) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Extend grows the rectangle to include p.
func (r Rect) Extend(p Point) Rect {
	r.MinX = min(r.MinX, p.X)
	r.MinY = min(r.MinY, p.Y)
	r.MaxX = max(r.MaxX, p.X)
	r.MaxY = max(r.MaxY, p.Y)
	return r
}

// Bounds returns the tight box around every on- and off-curve point of the
// commands. It returns an empty rectangle when no command carries a point.
func Bounds(cmds []Command) Rect {
	r := EmptyRect()
	for _, c := range cmds {
		switch c.Op {
		case OpMoveTo, OpLineTo:
			r = r.Extend(c.Args[0])
		case OpQuadTo:
			r = r.Extend(c.Args[0]).Extend(c.Args[1])
		}
	}
	return r
}
