// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package outline records glyph outlines as command streams and adapts real
// font parsers into outline sources for the band compiler.
//
// # Commands
//
// A glyph outline is an ordered sequence of [Command] values (move, line,
// quadratic, close) in font design units with the Y axis pointing up.
// Commands are collected by a [Recorder], which only accepts the quadratic
// subset: a cubic segment is a contract violation and fails with
// [ErrCubicSegment].
//
// # Sources
//
// A [Source] exposes the per-glyph data the compiler needs: a decomposition
// into commands, the outline bounding box, and the font's units-per-em.
// Two implementations are provided:
//
//   - [SFNTSource], backed by golang.org/x/image/font/sfnt
//   - [GoTextSource], backed by github.com/go-text/typesetting
//
// Both can convert cubic segments (CFF outlines) into quadratics before
// they reach the recorder, see [WithCubicConversion].
package outline
