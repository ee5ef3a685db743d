// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gogpu/glyphband/internal/parallel"
	"github.com/gogpu/glyphband/outline"
)

// Compiler turns the outlines of a font into FontDrawingData.
//
// Compilation runs in two passes over a worker pool. The size pass
// records, normalizes and band-indexes every glyph into a private block.
// Prefix sums over the block sizes then fix every glyph's offsets, and the
// fill pass copies the blocks into exact-size shared arrays, each worker
// writing a disjoint range. The result does not depend on the worker count.
//
// Compiler is safe for concurrent use.
type Compiler struct {
	cfg Config
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(cfg Config) (*Compiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Compiler{cfg: cfg}, nil
}

// Config returns the compiler configuration.
func (c *Compiler) Config() Config {
	return c.cfg
}

// Compile compiles src with DefaultConfig.
func Compile(src outline.Source) (*FontDrawingData, error) {
	c, err := NewCompiler(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return c.Compile(src)
}

// glyphBlock is the private output of the size pass for one glyph.
type glyphBlock struct {
	curves  []Curve
	hor     []uint32
	ver     []uint32
	summary GlyphSummary
	err     error
}

// glyphWorker holds the per-goroutine scratch state of the size pass.
type glyphWorker struct {
	cfg     *Config
	src     outline.Source
	upm     float32
	rec     *outline.Recorder
	bands   *bandBuilder
	curves  []Curve
	scratch []uint32
}

// Compile compiles every glyph of src.
//
// A glyph without an outline gets the sentinel summary and no curves or
// bands. The first failing glyph, by id, aborts the compilation with a
// *GlyphError.
func (c *Compiler) Compile(src outline.Source) (*FontDrawingData, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	upm := src.UnitsPerEm()
	if !(upm > 0) {
		return nil, outline.ErrBadUnitsPerEm
	}
	n := src.NumGlyphs()
	start := time.Now()

	pool := parallel.NewWorkerPool(c.cfg.Workers)
	defer pool.Close()

	blocks := make([]glyphBlock, n)

	// failed holds the lowest failing glyph id seen so far. Glyphs above it
	// are skipped; glyphs below it still run so the lowest failure wins.
	var failed atomic.Int64
	failed.Store(math.MaxInt64)

	pool.Range(n, c.cfg.ChunkSize, func(lo, hi int) {
		w := &glyphWorker{
			cfg:   &c.cfg,
			src:   src,
			upm:   upm,
			rec:   outline.NewRecorder(),
			bands: newBandBuilder(&c.cfg),
		}
		for gid := lo; gid < hi; gid++ {
			if int64(gid) > failed.Load() {
				return
			}
			blocks[gid] = w.compileGlyph(gid)
			if blocks[gid].err != nil {
				lowerTo(&failed, int64(gid))
				return
			}
		}
	})

	if f := failed.Load(); f != math.MaxInt64 {
		return nil, &GlyphError{GlyphID: int(f), Err: blocks[f].err}
	}

	// Prefix sums.
	var curveTotal, horTotal, verTotal int
	glyphs := make([]GlyphSummary, n)
	for gid := range blocks {
		b := &blocks[gid]
		if b.summary.IsEmpty() {
			glyphs[gid] = b.summary
			continue
		}
		if uint64(curveTotal) > math.MaxUint32 || uint64(horTotal) > math.MaxUint32 || uint64(verTotal) > math.MaxUint32 {
			return nil, ErrTooLarge
		}
		s := b.summary
		s.CurveOffset = uint32(curveTotal)
		s.HBandOffset = uint32(horTotal)
		s.VBandOffset = uint32(verTotal)
		glyphs[gid] = s

		curveTotal += len(b.curves)
		horTotal += len(b.hor)
		verTotal += len(b.ver)
	}

	data := &FontDrawingData{
		UnitsPerEm: upm,
		NumGlyphs:  n,
		Curves:     make([]Curve, curveTotal),
		HorBands:   make([]uint32, horTotal),
		VerBands:   make([]uint32, verTotal),
		Glyphs:     glyphs,
	}

	pool.Range(n, c.cfg.ChunkSize, func(lo, hi int) {
		for gid := lo; gid < hi; gid++ {
			g := glyphs[gid]
			if g.IsEmpty() {
				continue
			}
			b := &blocks[gid]
			copy(data.Curves[g.CurveOffset:], b.curves)
			copy(data.HorBands[g.HBandOffset:], b.hor)
			copy(data.VerBands[g.VBandOffset:], b.ver)
		}
	})

	Logger().Debug("glyphband: font compiled",
		"glyphs", n,
		"curves", curveTotal,
		"horBands", horTotal,
		"verBands", verTotal,
		"workers", pool.Workers(),
		"elapsed", time.Since(start))

	return data, nil
}

// compileGlyph runs the recorder, normalizer and band builder for one glyph.
func (w *glyphWorker) compileGlyph(gid int) glyphBlock {
	w.rec.Reset()
	bounds, ok, err := w.src.Decompose(gid, w.rec)
	if err == nil {
		err = w.rec.Err()
	}
	if err != nil {
		return glyphBlock{err: err}
	}
	if !ok || w.rec.Empty() {
		return glyphBlock{summary: EmptyGlyphSummary()}
	}

	cmds := w.rec.Commands()
	if bounds.IsEmpty() {
		bounds = outline.Bounds(cmds)
		if bounds.IsEmpty() {
			return glyphBlock{summary: EmptyGlyphSummary()}
		}
	}

	var geometric int
	w.curves, geometric = Normalize(w.curves[:0], cmds, w.upm, bounds)
	if len(w.curves) == 0 {
		return glyphBlock{summary: EmptyGlyphSummary()}
	}

	width, height := newNormalizer(w.upm, bounds).size(bounds)
	count := w.cfg.bandCount(geometric)

	blk := glyphBlock{
		curves: slices.Clone(w.curves),
		summary: GlyphSummary{
			BandCount: uint32(count),
			Width:     width,
			Height:    height,
		},
	}
	w.scratch = w.bands.build(w.scratch[:0], w.curves, Horizontal, count, height/float32(count))
	blk.hor = slices.Clone(w.scratch)
	w.scratch = w.bands.build(w.scratch[:0], w.curves, Vertical, count, width/float32(count))
	blk.ver = slices.Clone(w.scratch)
	return blk
}

// lowerTo atomically lowers v to x if x is smaller.
func lowerTo(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x >= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
