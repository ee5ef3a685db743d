// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/glyphband"
)

// State is the lifecycle state of one cache key.
type State uint32

const (
	// StateUninitialized means the key was never requested, or its last
	// build failed.
	StateUninitialized State = iota

	// StateLoading means the cache file is being read and validated.
	StateLoading

	// StateBuilding means the font is being compiled.
	StateBuilding

	// StateReady means the data is available in memory.
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateLoading:
		return "Loading"
	case StateBuilding:
		return "Building"
	case StateReady:
		return "Ready"
	default:
		return fmt.Sprintf("State(%d)", uint32(s))
	}
}

// Builder produces the data of a font that has no usable cache file.
type Builder func() (*glyphband.FontDrawingData, error)

// Stats counts how requests were served.
type Stats struct {
	// MemoHits counts requests served from memory.
	MemoHits uint64
	// FileHits counts requests served from a cache file.
	FileHits uint64
	// Builds counts successful builds.
	Builds uint64
	// Rejected counts cache files that failed to decode or validate.
	Rejected uint64
	// WriteFailures counts cache files that could not be stored.
	WriteFailures uint64
}

// keyEntry serializes work on one key.
type keyEntry struct {
	mu    sync.Mutex
	state atomic.Uint32
}

// FontCache loads compiled fonts from a cache directory and builds the ones
// that are missing or unusable.
//
// FontCache is safe for concurrent use. Requests for the same key are
// serialized; requests for different keys run in parallel.
type FontCache struct {
	dir  string
	opts options
	memo *memo

	mu   sync.Mutex
	keys map[Key]*keyEntry

	memoHits      atomic.Uint64
	fileHits      atomic.Uint64
	builds        atomic.Uint64
	rejected      atomic.Uint64
	writeFailures atomic.Uint64
}

// DefaultDir returns the default cache directory: "glyphband" under the
// user cache directory.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "glyphband"), nil
}

// New creates a cache over dir, creating the directory if needed. An empty
// dir selects DefaultDir.
func New(dir string, opts ...Option) (*FontCache, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("cache: default directory: %w", err)
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create directory: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.compiler == nil {
		c, err := glyphband.NewCompiler(glyphband.DefaultConfig())
		if err != nil {
			return nil, err
		}
		o.compiler = c
	}

	return &FontCache{
		dir:  dir,
		opts: o,
		memo: newMemo(o.memoSize),
		keys: make(map[Key]*keyEntry),
	}, nil
}

// Dir returns the cache directory.
func (c *FontCache) Dir() string {
	return c.dir
}

// Path returns the cache file path of key.
func (c *FontCache) Path(key Key) string {
	return filepath.Join(c.dir, key.FileName())
}

// State returns the current state of key.
func (c *FontCache) State(key Key) State {
	c.mu.Lock()
	e, ok := c.keys[key]
	c.mu.Unlock()
	if !ok {
		return StateUninitialized
	}
	return State(e.state.Load())
}

// Stats returns a snapshot of the request counters.
func (c *FontCache) Stats() Stats {
	return Stats{
		MemoHits:      c.memoHits.Load(),
		FileHits:      c.fileHits.Load(),
		Builds:        c.builds.Load(),
		Rejected:      c.rejected.Load(),
		WriteFailures: c.writeFailures.Load(),
	}
}

// Forget drops key from memory. The cache file is kept.
func (c *FontCache) Forget(key Key) {
	c.memo.remove(key)
	c.mu.Lock()
	delete(c.keys, key)
	c.mu.Unlock()
}

func (c *FontCache) entry(key Key) *keyEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.keys[key]
	if !ok {
		e = &keyEntry{}
		c.keys[key] = e
	}
	return e
}

// LoadOrBuild returns the data for key from memory, from its cache file, or
// by calling build and storing the result.
//
// A cache file that cannot be read, decoded or validated is rebuilt. If the
// built data cannot be stored, LoadOrBuild returns the data together with a
// *WriteError. Errors from build are returned unchanged.
func (c *FontCache) LoadOrBuild(key Key, build Builder) (*glyphband.FontDrawingData, error) {
	if d, ok := c.memo.get(key); ok {
		c.memoHits.Add(1)
		return d, nil
	}

	e := c.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Another caller may have finished this key while we waited.
	if d, ok := c.memo.get(key); ok {
		c.memoHits.Add(1)
		return d, nil
	}

	path := c.Path(key)
	if d, ok := c.load(e, key, path); ok {
		return d, nil
	}

	e.state.Store(uint32(StateBuilding))
	start := time.Now()
	d, err := build()
	if err == nil && d == nil {
		err = ErrNilData
	}
	if err != nil {
		e.state.Store(uint32(StateUninitialized))
		return nil, err
	}
	c.builds.Add(1)
	c.memo.put(key, d)
	e.state.Store(uint32(StateReady))

	if err := WriteFile(path, key, d); err != nil {
		c.writeFailures.Add(1)
		glyphband.Logger().Warn("glyphband cache: write failed", "path", path, "err", err)
		return d, &WriteError{Path: path, Err: err}
	}

	glyphband.Logger().Info("glyphband cache: font built",
		"key", key.Name,
		"glyphs", d.NumGlyphs,
		"curves", len(d.Curves),
		"elapsed", time.Since(start))
	glyphband.Logger().Debug("glyphband cache: file written", "path", path)
	return d, nil
}

// load reads the cache file of key. A missing file is not reported; any
// other failure is logged and counted as a rejection.
func (c *FontCache) load(e *keyEntry, key Key, path string) (*glyphband.FontDrawingData, bool) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.reject(path, err)
		}
		return nil, false
	}

	e.state.Store(uint32(StateLoading))
	d, err := ReadFile(path, key)
	if err != nil {
		c.reject(path, err)
		return nil, false
	}

	c.fileHits.Add(1)
	c.memo.put(key, d)
	e.state.Store(uint32(StateReady))
	glyphband.Logger().Info("glyphband cache: font loaded", "key", key.Name, "glyphs", d.NumGlyphs)
	glyphband.Logger().Debug("glyphband cache: file read", "path", path)
	return d, true
}

func (c *FontCache) reject(path string, err error) {
	c.rejected.Add(1)
	glyphband.Logger().Warn("glyphband cache: file rejected, rebuilding", "path", path, "err", err)
}

// LoadFontData returns the compiled data of a font held in memory. name is
// the font's file name and only contributes to the key.
func (c *FontCache) LoadFontData(name string, data []byte) (*glyphband.FontDrawingData, error) {
	key := NewKey(name, data)
	return c.LoadOrBuild(key, func() (*glyphband.FontDrawingData, error) {
		src, err := c.opts.source(data)
		if err != nil {
			return nil, fmt.Errorf("cache: open %s: %w", name, err)
		}
		return c.opts.compiler.Compile(src)
	})
}

// LoadFont reads the font file at path and returns its compiled data.
func (c *FontCache) LoadFont(path string) (*glyphband.FontDrawingData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cache: read font: %w", err)
	}
	return c.LoadFontData(path, data)
}
