// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphband"
	"github.com/gogpu/glyphband/outline"
)

var (
	goRegularOnce sync.Once
	goRegularData *glyphband.FontDrawingData
	goRegularErr  error
)

// goRegular returns the compiled Go Regular font. Callers must not modify it.
func goRegular(t *testing.T) *glyphband.FontDrawingData {
	t.Helper()
	goRegularOnce.Do(func() {
		src, err := outline.NewSFNTSource(goregular.TTF)
		if err != nil {
			goRegularErr = err
			return
		}
		goRegularData, goRegularErr = glyphband.Compile(src)
	})
	if goRegularErr != nil {
		t.Fatalf("compile Go Regular: %v", goRegularErr)
	}
	return goRegularData
}

func goRegularKey() Key {
	return NewKey("GoRegular.ttf", goregular.TTF)
}

// clone returns a deep copy of d.
func clone(d *glyphband.FontDrawingData) *glyphband.FontDrawingData {
	c := *d
	c.Curves = append([]glyphband.Curve{}, d.Curves...)
	c.HorBands = append([]uint32{}, d.HorBands...)
	c.VerBands = append([]uint32{}, d.VerBands...)
	c.Glyphs = append([]glyphband.GlyphSummary{}, d.Glyphs...)
	return &c
}
