// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphband"
)

// WriteFile stores the cache file form of d at path.
//
// The file is written under a temporary name in the same directory, synced
// and renamed into place. On failure the temporary file is removed and any
// existing file at path is left untouched.
func WriteFile(path string, key Key, d *glyphband.FontDrawingData) (err error) {
	if d == nil {
		return ErrNilData
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = Encode(w, key, d); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadFile loads the cache file at path written for want.
func ReadFile(path string, want Key) (*glyphband.FontDrawingData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(bufio.NewReader(f), want)
}
