// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"strings"
	"testing"
)

func TestShaderSource(t *testing.T) {
	if ShaderSource == "" {
		t.Fatal("shader source is empty")
	}
	for _, want := range []string{
		"@fragment",
		"fn " + ShaderEntryPoint,
		"@binding(0) var<storage, read> curves",
		"@binding(3) var<storage, read> glyphs",
	} {
		if !strings.Contains(ShaderSource, want) {
			t.Errorf("shader source lacks %q", want)
		}
	}
}

func TestCompileShader(t *testing.T) {
	words, err := CompileShader()
	if err != nil {
		// naga covers a growing subset of WGSL; storage arrays of structs
		// are not available in every release.
		t.Skipf("naga cannot compile the band shader: %v", err)
	}
	if len(words) < 5 {
		t.Fatalf("SPIR-V has %d words", len(words))
	}
	if words[0] != spirvMagic {
		t.Errorf("magic = %#x, want %#x", words[0], spirvMagic)
	}
}
