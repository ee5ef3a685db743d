// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"github.com/gogpu/glyphband"
	"github.com/gogpu/glyphband/outline"
)

// SourceFunc opens an outline source over raw font bytes.
type SourceFunc func(data []byte) (outline.Source, error)

// SFNT opens fonts with outline.NewSFNTSource.
func SFNT(opts ...outline.SourceOption) SourceFunc {
	return func(data []byte) (outline.Source, error) {
		src, err := outline.NewSFNTSource(data, opts...)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
}

// GoText opens fonts with outline.NewGoTextSource.
func GoText(opts ...outline.SourceOption) SourceFunc {
	return func(data []byte) (outline.Source, error) {
		src, err := outline.NewGoTextSource(data, opts...)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
}

// Option configures a FontCache.
type Option func(*options)

type options struct {
	compiler *glyphband.Compiler
	source   SourceFunc
	memoSize int
}

func defaultOptions() options {
	return options{
		source:   SFNT(),
		memoSize: DefaultMemoSize,
	}
}

// WithCompiler sets the compiler used to build missing fonts.
// The default compiles with glyphband.DefaultConfig.
func WithCompiler(c *glyphband.Compiler) Option {
	return func(o *options) {
		if c != nil {
			o.compiler = c
		}
	}
}

// WithSource sets how font bytes are opened for LoadFont and LoadFontData.
// The default is SFNT().
func WithSource(fn SourceFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.source = fn
		}
	}
}

// WithMemoSize sets how many fonts are kept in memory. Zero disables the
// in-memory memo; negative values are ignored.
func WithMemoSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.memoSize = n
		}
	}
}
