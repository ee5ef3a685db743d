// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTSource is a Source backed by golang.org/x/image/font/sfnt.
//
// Glyphs are loaded at a ppem equal to the font's units-per-em, so the
// returned coordinates are font design units. sfnt reports Y pointing down;
// SFNTSource flips it back to Y up.
//
// SFNTSource is safe for concurrent use.
type SFNTSource struct {
	font    *sfnt.Font
	upm     sfnt.Units
	glyphs  int
	config  sourceConfig
	buffers sync.Pool
}

// NewSFNTSource parses TrueType or OpenType font data.
// The data must not be modified while the source is in use.
func NewSFNTSource(data []byte, opts ...SourceOption) (*SFNTSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: parse font: %w", err)
	}

	upm := f.UnitsPerEm()
	if upm <= 0 {
		return nil, ErrBadUnitsPerEm
	}

	s := &SFNTSource{
		font:   f,
		upm:    upm,
		glyphs: f.NumGlyphs(),
		config: applySourceOptions(opts),
	}
	s.buffers.New = func() any { return new(sfnt.Buffer) }
	return s, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (s *SFNTSource) NumGlyphs() int {
	return s.glyphs
}

// UnitsPerEm returns the font's design units per em.
func (s *SFNTSource) UnitsPerEm() float32 {
	return float32(s.upm)
}

// Decompose records the outline of glyph gid.
func (s *SFNTSource) Decompose(gid int, rec *Recorder) (Rect, bool, error) {
	if gid < 0 || gid >= s.glyphs {
		return Rect{}, false, ErrGlyphRange
	}

	buf, _ := s.buffers.Get().(*sfnt.Buffer)
	defer s.buffers.Put(buf)

	segments, err := s.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), fixed.I(int(s.upm)), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) || errors.Is(err, sfnt.ErrColoredGlyph) {
			return Rect{}, false, nil
		}
		return Rect{}, false, fmt.Errorf("outline: load glyph %d: %w", gid, err)
	}

	e := newEmitter(rec, &s.config)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			e.moveTo(fixedToPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			e.lineTo(fixedToPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			e.quadTo(fixedToPoint(seg.Args[0]), fixedToPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			err := e.cubeTo(fixedToPoint(seg.Args[0]), fixedToPoint(seg.Args[1]), fixedToPoint(seg.Args[2]))
			if err != nil {
				return Rect{}, false, err
			}
		}
	}
	return e.finish()
}

// fixedToPoint converts a 26.6 point with Y down into a Y-up Point.
func fixedToPoint(p fixed.Point26_6) Point {
	return Point{
		X: float32(p.X) / 64,
		Y: float32(-p.Y) / 64,
	}
}
