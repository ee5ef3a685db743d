// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu moves compiled font drawing data onto the GPU.
//
// The four arrays of a glyphband.FontDrawingData map to four storage
// buffers, bound in this order by the band shader:
//
//	binding 0  curves     16 bytes per curve (4 x f32)
//	binding 1  hor_bands  u32 words
//	binding 2  ver_bands  u32 words
//	binding 3  glyphs     24 bytes per glyph summary
//
// All values are little-endian. [Encode] produces the buffer contents,
// [Uploader] creates and fills the buffers through wgpu/hal, and
// [CompileShader] compiles the embedded WGSL fragment shader that evaluates
// glyph coverage from them.
//
// Usage with a host application that owns the device:
//
//	up, err := gpu.NewUploaderFromProvider(provider)
//	if err != nil {
//		return err
//	}
//	defer up.Destroy()
//	if err := up.Upload(data); err != nil {
//		return err
//	}
package gpu

import "errors"

// Sentinel errors for gpu package.
var (
	// ErrNilDevice is returned when the uploader has no device or queue.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrNoHAL is returned when a device provider does not expose HAL types.
	ErrNoHAL = errors.New("gpu: provider does not expose HAL device and queue")

	// ErrNilData is returned when nil font data is uploaded.
	ErrNilData = errors.New("gpu: nil font drawing data")
)
