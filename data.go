// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

// Axis selects one of the two band indexes.
type Axis uint8

const (
	// Horizontal bands partition a glyph along Y. Entries are keyed by the
	// maximum X of the curve, for rays cast along +X.
	Horizontal Axis = iota

	// Vertical bands partition a glyph along X. Entries are keyed by the
	// maximum Y of the curve, for rays cast along +Y.
	Vertical
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// FontDrawingData is the compiled, GPU-ready form of a font.
//
// Curves holds every glyph's curve run back to back, in glyph id order.
// HorBands and VerBands hold, per glyph, BandCount header pairs
// (entriesOffset, entriesCount) followed by the entry lists. Entry offsets
// are relative to the glyph's header block and entries are curve indexes
// relative to the glyph's CurveOffset.
//
// FontDrawingData is immutable once built and safe for concurrent reads.
type FontDrawingData struct {
	UnitsPerEm float32
	NumGlyphs  int
	Curves     []Curve
	HorBands   []uint32
	VerBands   []uint32
	Glyphs     []GlyphSummary
}

// Glyph returns the summary of glyph gid.
func (d *FontDrawingData) Glyph(gid int) (GlyphSummary, bool) {
	if gid < 0 || gid >= len(d.Glyphs) {
		return GlyphSummary{}, false
	}
	return d.Glyphs[gid], true
}

// curveEnd returns the end of glyph gid's curve run: the CurveOffset of the
// next glyph with geometry, or the total number of curves.
func (d *FontDrawingData) curveEnd(gid int) int {
	for next := gid + 1; next < len(d.Glyphs); next++ {
		if !d.Glyphs[next].IsEmpty() {
			return int(d.Glyphs[next].CurveOffset)
		}
	}
	return len(d.Curves)
}

// GlyphCurves returns the curve run of glyph gid, or nil for glyphs
// without an outline.
func (d *FontDrawingData) GlyphCurves(gid int) []Curve {
	g, ok := d.Glyph(gid)
	if !ok || g.IsEmpty() {
		return nil
	}
	start, end := int(g.CurveOffset), d.curveEnd(gid)
	if start > end || end > len(d.Curves) {
		return nil
	}
	return d.Curves[start:end]
}

// Bands returns the band array of the given axis.
func (d *FontDrawingData) Bands(axis Axis) []uint32 {
	if axis == Vertical {
		return d.VerBands
	}
	return d.HorBands
}

// BandEntries returns the sorted entries of one band of glyph gid.
// It returns nil when the glyph or band does not exist.
func (d *FontDrawingData) BandEntries(axis Axis, gid, band int) []uint32 {
	g, ok := d.Glyph(gid)
	if !ok || g.IsEmpty() || band < 0 || band >= int(g.BandCount) {
		return nil
	}
	arr := d.Bands(axis)
	block := int(g.HBandOffset)
	if axis == Vertical {
		block = int(g.VBandOffset)
	}
	h := block + 2*band
	if h+1 >= len(arr) {
		return nil
	}
	start := block + int(arr[h])
	end := start + int(arr[h+1])
	if end > len(arr) {
		return nil
	}
	return arr[start:end]
}

// Stats summarizes compiled font data.
type Stats struct {
	Glyphs      int
	EmptyGlyphs int
	Curves      int
	Sentinels   int
	HorEntries  int
	VerEntries  int
}

// Stats computes summary counts over the compiled data.
func (d *FontDrawingData) Stats() Stats {
	s := Stats{Glyphs: len(d.Glyphs), Curves: len(d.Curves)}
	for _, c := range d.Curves {
		if c.IsMove() {
			s.Sentinels++
		}
	}
	for gid, g := range d.Glyphs {
		if g.IsEmpty() {
			s.EmptyGlyphs++
			continue
		}
		for b := 0; b < int(g.BandCount); b++ {
			s.HorEntries += len(d.BandEntries(Horizontal, gid, b))
			s.VerEntries += len(d.BandEntries(Vertical, gid, b))
		}
	}
	return s
}
