// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.CurvesPerBand != 8 || cfg.MinBands != 2 || cfg.MaxBands != 16 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.FlatEpsilon != 1e-5 {
		t.Errorf("FlatEpsilon = %v, want 1e-5", cfg.FlatEpsilon)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"negative workers", func(c *Config) { c.Workers = -1 }, "Workers"},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }, "ChunkSize"},
		{"zero curves per band", func(c *Config) { c.CurvesPerBand = 0 }, "CurvesPerBand"},
		{"one band", func(c *Config) { c.MinBands = 1 }, "MinBands"},
		{"max below min", func(c *Config) { c.MinBands, c.MaxBands = 8, 4 }, "MaxBands"},
		{"too many bands", func(c *Config) { c.MaxBands = 4096 }, "MaxBands"},
		{"negative epsilon", func(c *Config) { c.FlatEpsilon = -1 }, "FlatEpsilon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	e := &ConfigError{Field: "MaxBands", Reason: "must be at most 1024"}
	want := "glyphband: invalid config.MaxBands: must be at most 1024"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestGlyphError(t *testing.T) {
	inner := errors.New("boom")
	e := &GlyphError{GlyphID: 12, Err: inner}
	if got, want := e.Error(), "glyphband: glyph 12: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, inner) {
		t.Error("GlyphError does not unwrap")
	}
}
