// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

// EmptyGlyphSize is the width and height of the sentinel summary.
const EmptyGlyphSize float32 = -10

// GlyphSummarySize is the encoded size of a GlyphSummary in bytes.
const GlyphSummarySize = 24

// GlyphSummary is the per-glyph record of the glyph table.
//
// Offsets point into the shared arrays of FontDrawingData. HBandOffset and
// VBandOffset address the first header pair of the glyph's block in the
// horizontal and vertical band arrays. Width and Height are the bounding box
// size in em units.
type GlyphSummary struct {
	CurveOffset uint32
	HBandOffset uint32
	VBandOffset uint32
	BandCount   uint32
	Width       float32
	Height      float32
}

// EmptyGlyphSummary returns the sentinel record for a glyph with no outline.
func EmptyGlyphSummary() GlyphSummary {
	return GlyphSummary{Width: EmptyGlyphSize, Height: EmptyGlyphSize}
}

// IsEmpty reports whether g is the sentinel record. Consumers iterating
// curves must skip such glyphs.
func (g GlyphSummary) IsEmpty() bool {
	return g.Width < 0 || g.Height < 0
}
