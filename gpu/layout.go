// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glyphband"
)

// Byte strides of the buffer records.
const (
	CurveStride = 16
	BandStride  = 4
	GlyphStride = glyphband.GlyphSummarySize
)

// Layout holds the little-endian contents of the four glyph buffers.
type Layout struct {
	Curves   []byte
	HorBands []byte
	VerBands []byte
	Glyphs   []byte
}

// Size returns the total size of the buffers in bytes.
func (l *Layout) Size() int {
	return len(l.Curves) + len(l.HorBands) + len(l.VerBands) + len(l.Glyphs)
}

// Encode returns the buffer contents of d.
func Encode(d *glyphband.FontDrawingData) Layout {
	return Layout{
		Curves:   AppendCurves(make([]byte, 0, len(d.Curves)*CurveStride), d.Curves),
		HorBands: AppendBands(make([]byte, 0, len(d.HorBands)*BandStride), d.HorBands),
		VerBands: AppendBands(make([]byte, 0, len(d.VerBands)*BandStride), d.VerBands),
		Glyphs:   AppendGlyphs(make([]byte, 0, len(d.Glyphs)*GlyphStride), d.Glyphs),
	}
}

// AppendCurves appends each curve as four f32 values.
func AppendCurves(dst []byte, curves []glyphband.Curve) []byte {
	for _, c := range curves {
		for _, v := range c {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
		}
	}
	return dst
}

// AppendBands appends band headers and entries as u32 words.
func AppendBands(dst []byte, bands []uint32) []byte {
	for _, w := range bands {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	return dst
}

// AppendGlyphs appends each summary as four u32 offsets followed by width
// and height as f32.
func AppendGlyphs(dst []byte, glyphs []glyphband.GlyphSummary) []byte {
	for _, g := range glyphs {
		dst = binary.LittleEndian.AppendUint32(dst, g.CurveOffset)
		dst = binary.LittleEndian.AppendUint32(dst, g.HBandOffset)
		dst = binary.LittleEndian.AppendUint32(dst, g.VBandOffset)
		dst = binary.LittleEndian.AppendUint32(dst, g.BandCount)
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(g.Width))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(g.Height))
	}
	return dst
}
