// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"fmt"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphband/outline"
)

// BenchmarkCompile_GoRegular measures a full font compile at several
// worker counts.
func BenchmarkCompile_GoRegular(b *testing.B) {
	src, err := outline.NewSFNTSource(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	for _, workers := range []int{1, 2, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.Workers = workers
			c, err := NewCompiler(cfg)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Compile(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBandBuilder(b *testing.B) {
	cmds := blob(200, 1000)
	run, geometric := Normalize(nil, cmds, 1000, outline.Bounds(cmds))
	cfg := DefaultConfig()
	count := cfg.bandCount(geometric)
	bb := newBandBuilder(&cfg)
	var dst []uint32

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = bb.build(dst[:0], run, Horizontal, count, 1/float32(count))
	}
}
