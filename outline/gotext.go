// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

var maxpTag = ot.MustNewTag("maxp")

// GoTextSource is a Source backed by github.com/go-text/typesetting.
//
// Outlines come from font.Face.GlyphData and are already Y-up font design
// units. Bitmap and SVG glyph data count as "no outline".
//
// GoTextSource is safe for concurrent use: the parsed font.Font is shared
// and every Decompose call wraps it in its own lightweight font.Face.
type GoTextSource struct {
	font   *font.Font
	upm    float32
	glyphs int
	config sourceConfig
}

// NewGoTextSource parses TrueType or OpenType font data.
func NewGoTextSource(data []byte, opts ...SourceOption) (*GoTextSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("outline: parse font: %w", err)
	}

	upm := face.Upem()
	if upm == 0 {
		return nil, ErrBadUnitsPerEm
	}

	glyphs, err := numGlyphs(data)
	if err != nil {
		return nil, err
	}

	return &GoTextSource{
		font:   face.Font,
		upm:    float32(upm),
		glyphs: glyphs,
		config: applySourceOptions(opts),
	}, nil
}

// numGlyphs reads the glyph count from the maxp table.
func numGlyphs(data []byte) (int, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("outline: open font: %w", err)
	}
	maxp, err := ld.RawTable(maxpTag)
	if err != nil {
		return 0, fmt.Errorf("outline: read maxp: %w", err)
	}
	if len(maxp) < 6 {
		return 0, fmt.Errorf("outline: maxp table too short (%d bytes)", len(maxp))
	}
	return int(binary.BigEndian.Uint16(maxp[4:6])), nil
}

// NumGlyphs returns the number of glyphs in the font.
func (s *GoTextSource) NumGlyphs() int {
	return s.glyphs
}

// UnitsPerEm returns the font's design units per em.
func (s *GoTextSource) UnitsPerEm() float32 {
	return s.upm
}

// Decompose records the outline of glyph gid.
func (s *GoTextSource) Decompose(gid int, rec *Recorder) (Rect, bool, error) {
	if gid < 0 || gid >= s.glyphs {
		return Rect{}, false, ErrGlyphRange
	}

	face := font.NewFace(s.font)
	outline, ok := face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		return Rect{}, false, nil
	}

	e := newEmitter(rec, &s.config)
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			e.moveTo(segmentPoint(seg.Args[0]))
		case ot.SegmentOpLineTo:
			e.lineTo(segmentPoint(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			e.quadTo(segmentPoint(seg.Args[0]), segmentPoint(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			err := e.cubeTo(segmentPoint(seg.Args[0]), segmentPoint(seg.Args[1]), segmentPoint(seg.Args[2]))
			if err != nil {
				return Rect{}, false, err
			}
		}
	}
	return e.finish()
}

func segmentPoint(p ot.SegmentPoint) Point {
	return Point{X: p.X, Y: p.Y}
}
