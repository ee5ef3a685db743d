// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphband

// Config holds band compiler parameters.
type Config struct {
	// Workers is the number of compile goroutines. 0 means GOMAXPROCS.
	Workers int

	// ChunkSize is the number of glyph ids handed to a worker at once.
	ChunkSize int

	// CurvesPerBand divides a glyph's curve count to pick its band count.
	CurvesPerBand int

	// MinBands and MaxBands clamp the per-axis band count.
	MinBands int
	MaxBands int

	// FlatEpsilon is the em-space tolerance under which a curve counts as
	// flat along an axis and is left out of that axis' bands.
	FlatEpsilon float32
}

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return Config{
		Workers:       0,
		ChunkSize:     64,
		CurvesPerBand: 8,
		MinBands:      2,
		MaxBands:      16,
		FlatEpsilon:   1e-5,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	if c.ChunkSize < 1 {
		return &ConfigError{Field: "ChunkSize", Reason: "must be at least 1"}
	}
	if c.CurvesPerBand < 1 {
		return &ConfigError{Field: "CurvesPerBand", Reason: "must be at least 1"}
	}
	if c.MinBands < 2 {
		return &ConfigError{Field: "MinBands", Reason: "must be at least 2"}
	}
	if c.MaxBands < c.MinBands {
		return &ConfigError{Field: "MaxBands", Reason: "must not be less than MinBands"}
	}
	if c.MaxBands > 1024 {
		return &ConfigError{Field: "MaxBands", Reason: "must be at most 1024"}
	}
	if c.FlatEpsilon < 0 {
		return &ConfigError{Field: "FlatEpsilon", Reason: "must not be negative"}
	}
	return nil
}

// bandCount returns the per-axis band count for a glyph with the given
// number of geometric curves.
func (c *Config) bandCount(curves int) int {
	return min(max(curves/c.CurvesPerBand, c.MinBands), c.MaxBands)
}
