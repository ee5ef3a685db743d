// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import "errors"

// Sentinel errors for outline package.
var (
	// ErrCubicSegment is returned when a cubic segment reaches a recorder.
	// Only lines and quadratics are accepted; convert cubics first.
	ErrCubicSegment = errors.New("outline: cubic segment in quadratic outline")

	// ErrEmptyFontData is returned when a source is created from no bytes.
	ErrEmptyFontData = errors.New("outline: empty font data")

	// ErrGlyphRange is returned when a glyph id is outside the font.
	ErrGlyphRange = errors.New("outline: glyph id out of range")

	// ErrBadUnitsPerEm is returned when a font reports a non-positive
	// units-per-em value.
	ErrBadUnitsPerEm = errors.New("outline: invalid units per em")
)
