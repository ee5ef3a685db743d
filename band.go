// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"cmp"
	"math"
	"slices"
)

// bandEntry is one curve placed in one band before sorting.
type bandEntry struct {
	band   int
	key    float32
	offset uint32
}

// compareEntries orders entries by band, then key descending, then curve
// offset ascending so equal keys sort reproducibly.
func compareEntries(a, b bandEntry) int {
	if c := cmp.Compare(a.band, b.band); c != 0 {
		return c
	}
	if c := cmp.Compare(b.key, a.key); c != 0 {
		return c
	}
	return cmp.Compare(a.offset, b.offset)
}

// bandBuilder builds band blocks for one glyph at a time. Its scratch
// buffers are reused between glyphs; a builder is owned by one worker.
type bandBuilder struct {
	epsilon float32
	entries []bandEntry
}

func newBandBuilder(cfg *Config) *bandBuilder {
	return &bandBuilder{epsilon: cfg.FlatEpsilon}
}

// build appends the block of one axis for a glyph's curve run to dst:
// count header pairs followed by each band's entries.
//
// For the horizontal axis bands split the glyph height into count strips of
// the given size; a curve lands in every strip its Y range touches and is
// keyed by its maximum X. The vertical axis swaps the roles of X and Y.
// Curves whose three points are flat along the banded axis are skipped. A
// zero size places every curve in all bands.
func (b *bandBuilder) build(dst []uint32, run []Curve, axis Axis, count int, size float32) []uint32 {
	b.entries = b.entries[:0]

	var px, py float32
	for i, c := range run {
		cx, cy := c.Control()
		ex, ey := c.End()
		if c.IsMove() {
			px, py = ex, ey
			continue
		}

		var lo, hi, key float32
		if axis == Horizontal {
			lo, hi = min(py, cy, ey), max(py, cy, ey)
			key = max(px, cx, ex)
		} else {
			lo, hi = min(px, cx, ex), max(px, cx, ex)
			key = max(py, cy, ey)
		}
		px, py = ex, ey

		if hi-lo <= b.epsilon {
			continue
		}

		first, last := 0, count-1
		if size > 0 {
			first = bandIndex(lo/size, count)
			last = bandIndex(hi/size, count)
		}
		for band := first; band <= last; band++ {
			b.entries = append(b.entries, bandEntry{band: band, key: key, offset: uint32(i)})
		}
	}

	slices.SortFunc(b.entries, compareEntries)

	header := len(dst)
	dst = slices.Grow(dst, 2*count+len(b.entries))
	dst = dst[:header+2*count]

	running := uint32(2 * count)
	j := 0
	for band := range count {
		first := j
		for j < len(b.entries) && b.entries[j].band == band {
			dst = append(dst, b.entries[j].offset)
			j++
		}
		n := uint32(j - first)
		dst[header+2*band] = running
		dst[header+2*band+1] = n
		running += n
	}
	return dst
}

// bandIndex converts a position in band units to a band index clamped to
// [0, count-1].
func bandIndex(v float32, count int) int {
	f := math.Floor(float64(v))
	if f < 0 {
		return 0
	}
	if f >= float64(count-1) {
		return count - 1
	}
	return int(f)
}
