// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// Source provides glyph outlines of one font.
//
// Decompose records the outline of glyph gid into rec and returns its tight
// bounding box in font design units. ok is false with a nil error when the
// glyph has no outline (for example a space); rec is left empty in that
// case. A non-nil error is fatal for the whole font.
//
// Implementations must allow concurrent Decompose calls with distinct
// recorders.
type Source interface {
	NumGlyphs() int
	UnitsPerEm() float32
	Decompose(gid int, rec *Recorder) (bounds Rect, ok bool, err error)
}

// SourceOption configures a Source during creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds optional source configuration.
type sourceConfig struct {
	convertCubics bool
	tolerance     float32
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		tolerance: DefaultCubicTolerance,
	}
}

func applySourceOptions(opts []SourceOption) sourceConfig {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCubicConversion makes the source approximate cubic segments with
// quadratics whose deviation stays below tolerance font units. A
// non-positive tolerance selects DefaultCubicTolerance.
//
// Without this option a cubic segment fails the glyph with ErrCubicSegment.
func WithCubicConversion(tolerance float32) SourceOption {
	return func(c *sourceConfig) {
		c.convertCubics = true
		if tolerance > 0 {
			c.tolerance = tolerance
		} else {
			c.tolerance = DefaultCubicTolerance
		}
	}
}

// emitter forwards parsed segments to a recorder, tracking the pen position
// for cubic conversion and the bounding box of every point.
type emitter struct {
	rec     *Recorder
	cfg     *sourceConfig
	bounds  Rect
	pen     Point
	open    bool
	scratch []Command
}

func newEmitter(rec *Recorder, cfg *sourceConfig) *emitter {
	return &emitter{rec: rec, cfg: cfg, bounds: EmptyRect()}
}

func (e *emitter) moveTo(p Point) {
	if e.open {
		e.rec.Close()
	}
	e.rec.MoveTo(p.X, p.Y)
	e.bounds = e.bounds.Extend(p)
	e.pen = p
	e.open = true
}

func (e *emitter) lineTo(p Point) {
	e.rec.LineTo(p.X, p.Y)
	e.bounds = e.bounds.Extend(p)
	e.pen = p
}

func (e *emitter) quadTo(c, p Point) {
	e.rec.QuadTo(c.X, c.Y, p.X, p.Y)
	e.bounds = e.bounds.Extend(c).Extend(p)
	e.pen = p
}

func (e *emitter) cubeTo(c1, c2, p Point) error {
	if !e.cfg.convertCubics {
		return e.rec.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	}
	e.scratch = CubicToQuads(e.scratch[:0], e.pen, c1, c2, p, e.cfg.tolerance)
	for _, q := range e.scratch {
		e.quadTo(q.Args[0], q.Args[1])
	}
	return nil
}

// finish closes the last contour and reports whether anything was emitted.
func (e *emitter) finish() (Rect, bool, error) {
	if e.open {
		e.rec.Close()
		e.open = false
	}
	if err := e.rec.Err(); err != nil {
		return Rect{}, false, err
	}
	if e.rec.Empty() {
		return Rect{}, false, nil
	}
	return e.bounds, true, nil
}
