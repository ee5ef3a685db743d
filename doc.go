// Package glyphband compiles glyph outlines into band-indexed quadratic
// curve data for GPU text rendering.
//
// # Overview
//
// A fragment shader can compute glyph coverage exactly by summing the winding
// number contributions of a glyph's quadratic curves. Testing every curve
// per pixel is wasteful, so glyphband splits each glyph's bounding box into
// horizontal and vertical bands and records which curves cross each band,
// sorted so the shader can stop early.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glyphband"
//	    "github.com/gogpu/glyphband/outline"
//	)
//
//	src, err := outline.NewSFNTSource(fontBytes)
//	if err != nil {
//	    return err
//	}
//	data, err := glyphband.Compile(src)
//	if err != nil {
//	    return err
//	}
//
// Use package cache to persist the compiled data between runs and package
// gpu to upload it.
//
// # Data Layout
//
// [FontDrawingData] holds four arrays shared by all glyphs:
//   - Curves: per-glyph curve runs of [Curve] values in em units, relative
//     to the glyph's bounding box minimum. A sentinel curve [-1, -1, x, y]
//     starts each contour.
//   - HorBands, VerBands: per glyph, BandCount header pairs
//     (entriesOffset, entriesCount) followed by the band entry lists. Entry
//     offsets count from the glyph's header block; entries are curve
//     indexes relative to the glyph's curve run, sorted by key descending.
//   - Glyphs: one [GlyphSummary] per glyph id. Glyphs without an outline get
//     the sentinel summary with a size of [EmptyGlyphSize].
//
// # Coordinate System
//
// Outlines use font design units with Y increasing up. Compiled curves are
// divided by units-per-em and shifted so every coordinate of a glyph lies in
// [0, Width] x [0, Height].
package glyphband

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
