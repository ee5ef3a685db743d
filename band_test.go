// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"slices"
	"testing"

	"github.com/gogpu/glyphband/outline"
)

func buildBands(t *testing.T, run []Curve, axis Axis, count int, size float32) []uint32 {
	t.Helper()
	cfg := DefaultConfig()
	return newBandBuilder(&cfg).build(nil, run, axis, count, size)
}

func TestBandBuilder_Triangle(t *testing.T) {
	run, _ := Normalize(nil, triangle(), 1, outline.Bounds(triangle()))

	tests := []struct {
		axis Axis
		want []uint32
	}{
		// The bottom edge is flat in Y and the left edge is flat in X.
		{Horizontal, []uint32{4, 2, 6, 2, 2, 3, 2, 3}},
		{Vertical, []uint32{4, 2, 6, 2, 2, 1, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			got := buildBands(t, run, tt.axis, 2, 0.5)
			if !slices.Equal(got, tt.want) {
				t.Errorf("bands = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBandBuilder_EmptyRun(t *testing.T) {
	got := buildBands(t, []Curve{MoveCurve(0, 0)}, Horizontal, 3, 1)
	want := []uint32{6, 0, 6, 0, 6, 0}
	if !slices.Equal(got, want) {
		t.Errorf("bands = %v, want %v", got, want)
	}
}

func TestBandBuilder_ZeroSizeUsesAllBands(t *testing.T) {
	run := []Curve{MoveCurve(0, 0), QuadCurve(0.5, 1, 1, 0)}
	got := buildBands(t, run, Horizontal, 3, 0)
	want := []uint32{6, 1, 7, 1, 8, 1, 1, 1, 1}
	if !slices.Equal(got, want) {
		t.Errorf("bands = %v, want %v", got, want)
	}
}

func TestBandBuilder_TiesByOffset(t *testing.T) {
	// Three curves reaching the same maximum X.
	run := []Curve{
		MoveCurve(0, 0),
		QuadCurve(1, 0.5, 0, 1),
		MoveCurve(0, 0),
		QuadCurve(1, 0.5, 0, 1),
		QuadCurve(0.5, 0.5, 0, 0),
	}
	got := buildBands(t, run, Horizontal, 2, 0.5)
	want := []uint32{4, 3, 7, 3, 1, 3, 4, 1, 3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("bands = %v, want %v", got, want)
	}
}

func TestBandBuilder_DescendingKeys(t *testing.T) {
	cmds := blob(60, 1000)
	run, geometric := Normalize(nil, cmds, 1000, outline.Bounds(cmds))
	cfg := DefaultConfig()
	count := cfg.bandCount(geometric)

	for _, axis := range []Axis{Horizontal, Vertical} {
		bands := buildBands(t, run, axis, count, 1/float32(count))
		if bands[0] != uint32(2*count) {
			t.Errorf("%v: header 0 offset = %d, want %d", axis, bands[0], 2*count)
		}
		for b := 0; b < count; b++ {
			off, n := bands[2*b], bands[2*b+1]
			if b+1 < count && bands[2*b+2] != off+n {
				t.Errorf("%v: header %d offset = %d, want %d", axis, b+1, bands[2*b+2], off+n)
			}
			if int(n) > geometric {
				t.Errorf("%v: band %d has %d entries for %d curves", axis, b, n, geometric)
			}
			entries := bands[off : off+n]
			for i := 1; i < len(entries); i++ {
				if curveKey(run, int(entries[i]), axis) > curveKey(run, int(entries[i-1]), axis) {
					t.Errorf("%v: band %d keys increase at %d", axis, b, i)
				}
			}
		}
	}
}

func TestBandBuilder_Epsilon(t *testing.T) {
	// A nearly horizontal curve is dropped from horizontal bands only when
	// its Y extent is within the epsilon.
	run := []Curve{MoveCurve(0, 0.5), QuadCurve(0.5, 0.5+1e-7, 1, 0.5)}

	cfg := DefaultConfig()
	got := newBandBuilder(&cfg).build(nil, run, Horizontal, 2, 0.5)
	if !slices.Equal(got, []uint32{4, 0, 4, 0}) {
		t.Errorf("flat curve kept: %v", got)
	}

	cfg.FlatEpsilon = 0
	got = newBandBuilder(&cfg).build(nil, run, Horizontal, 2, 0.5)
	if !slices.Equal(got, []uint32{4, 0, 4, 1, 1}) {
		t.Errorf("with zero epsilon bands = %v, want the curve in band 1", got)
	}
}

func TestBandIndex(t *testing.T) {
	tests := []struct {
		v     float32
		count int
		want  int
	}{
		{-0.5, 4, 0},
		{0, 4, 0},
		{0.99, 4, 0},
		{1, 4, 1},
		{3.5, 4, 3},
		{4, 4, 3},
		{100, 4, 3},
	}
	for _, tt := range tests {
		if got := bandIndex(tt.v, tt.count); got != tt.want {
			t.Errorf("bandIndex(%v, %d) = %d, want %d", tt.v, tt.count, got, tt.want)
		}
	}
}

func TestConfig_BandCount(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		curves, want int
	}{
		{0, 2},
		{3, 2},
		{16, 2},
		{24, 3},
		{64, 8},
		{128, 16},
		{1000, 16},
	}
	for _, tt := range tests {
		if got := cfg.bandCount(tt.curves); got != tt.want {
			t.Errorf("bandCount(%d) = %d, want %d", tt.curves, got, tt.want)
		}
	}
}
