// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import "fmt"

// Validate checks the structural invariants of compiled font data and
// returns a *ValidationError describing the first violation.
//
// It checks that there is one summary per glyph, that every curve run and
// band block lies inside its array, that band headers chain from 2*count,
// that every entry names a non-sentinel curve of its own glyph, that keys
// never increase inside a band, and that sentinel summaries carry zero
// offsets and a negative size.
func Validate(d *FontDrawingData) error {
	if d == nil {
		return &ValidationError{GlyphID: -1, Reason: "nil data"}
	}
	if !(d.UnitsPerEm > 0) {
		return &ValidationError{GlyphID: -1, Reason: fmt.Sprintf("units per em %v", d.UnitsPerEm)}
	}
	if len(d.Glyphs) != d.NumGlyphs {
		return &ValidationError{GlyphID: -1, Reason: fmt.Sprintf("%d summaries for %d glyphs", len(d.Glyphs), d.NumGlyphs)}
	}

	next := 0
	for gid, g := range d.Glyphs {
		if g.IsEmpty() {
			if g.CurveOffset != 0 || g.HBandOffset != 0 || g.VBandOffset != 0 || g.BandCount != 0 {
				return &ValidationError{GlyphID: gid, Reason: "sentinel summary with non-zero offsets"}
			}
			if g.Width >= 0 || g.Height >= 0 {
				return &ValidationError{GlyphID: gid, Reason: "sentinel summary with non-negative size"}
			}
			continue
		}

		if int(g.CurveOffset) != next {
			return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("curve offset %d, want %d", g.CurveOffset, next)}
		}
		end := d.curveEnd(gid)
		if end <= int(g.CurveOffset) || end > len(d.Curves) {
			return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("curve run [%d,%d) out of range", g.CurveOffset, end)}
		}
		next = end

		if g.BandCount < 2 {
			return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("band count %d", g.BandCount)}
		}

		run := d.Curves[g.CurveOffset:end]
		for _, axis := range []Axis{Horizontal, Vertical} {
			if err := validateBands(d, gid, g, run, axis); err != nil {
				return err
			}
		}
	}
	if next != len(d.Curves) {
		return &ValidationError{GlyphID: -1, Reason: fmt.Sprintf("%d curves not owned by any glyph", len(d.Curves)-next)}
	}
	return nil
}

func validateBands(d *FontDrawingData, gid int, g GlyphSummary, run []Curve, axis Axis) error {
	arr := d.Bands(axis)
	block := int(g.HBandOffset)
	if axis == Vertical {
		block = int(g.VBandOffset)
	}
	count := int(g.BandCount)
	if block+2*count > len(arr) {
		return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("%v header block out of range", axis)}
	}

	geometric := countGeometric(run)
	want := uint32(2 * count)
	for band := range count {
		offset, n := arr[block+2*band], arr[block+2*band+1]
		if offset != want {
			return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("%v band %d offset %d, want %d", axis, band, offset, want)}
		}
		want += n
		if int(n) > geometric {
			return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("%v band %d has %d entries for %d curves", axis, band, n, geometric)}
		}
		start, end := block+int(offset), block+int(offset)+int(n)
		if end > len(arr) {
			return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("%v band %d entries out of range", axis, band)}
		}

		var prev float32
		for i, e := range arr[start:end] {
			if int(e) >= len(run) || run[e].IsMove() {
				return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("%v band %d entry %d is not a curve", axis, band, e)}
			}
			key := curveKey(run, int(e), axis)
			if i > 0 && key > prev {
				return &ValidationError{GlyphID: gid, Reason: fmt.Sprintf("%v band %d keys increase at entry %d", axis, band, i)}
			}
			prev = key
		}
	}
	return nil
}

// curveKey returns the sort key of curve i of a run: the maximum X of its
// three points for horizontal bands, the maximum Y for vertical bands.
func curveKey(run []Curve, i int, axis Axis) float32 {
	var px, py float32
	if i > 0 {
		px, py = run[i-1].End()
	}
	cx, cy := run[i].Control()
	ex, ey := run[i].End()
	if axis == Horizontal {
		return max(px, cx, ex)
	}
	return max(py, cy, ey)
}
