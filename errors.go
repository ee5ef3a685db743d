// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"errors"
	"fmt"
)

// Sentinel errors for the band compiler.
var (
	// ErrNilSource is returned when Compile is called without a source.
	ErrNilSource = errors.New("glyphband: nil outline source")

	// ErrTooLarge is returned when compiled arrays would overflow the
	// 32-bit offsets of the glyph table.
	ErrTooLarge = errors.New("glyphband: font data exceeds 32-bit offsets")

	// ErrInvalidData is wrapped by every ValidationError.
	ErrInvalidData = errors.New("glyphband: invalid font drawing data")
)

// GlyphError reports a failure while compiling one glyph.
// A GlyphError aborts the compilation of the whole font.
type GlyphError struct {
	GlyphID int
	Err     error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyphband: glyph %d: %v", e.GlyphID, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphband: invalid config." + e.Field + ": " + e.Reason
}

// ValidationError describes the first structural violation found in a
// FontDrawingData. GlyphID is -1 for violations not tied to one glyph.
type ValidationError struct {
	GlyphID int
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.GlyphID < 0 {
		return "glyphband: invalid font drawing data: " + e.Reason
	}
	return fmt.Sprintf("glyphband: invalid font drawing data: glyph %d: %s", e.GlyphID, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}
