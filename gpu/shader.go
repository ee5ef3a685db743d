// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
)

// ShaderSource is the WGSL source of the band coverage fragment shader.
//
//go:embed shaders/glyph_band.wgsl
var ShaderSource string

// ShaderEntryPoint is the fragment entry point of ShaderSource.
const ShaderEntryPoint = "fs_main"

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirv, err := naga.Compile(ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile band shader: %w", err)
	}
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("gpu: compile band shader: %d bytes of SPIR-V", len(spirv))
	}

	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("gpu: compile band shader: bad SPIR-V magic %#x", words[0])
	}
	return words, nil
}
