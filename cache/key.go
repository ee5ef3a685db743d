// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"encoding/hex"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/cases"
)

// FormatVersion is the cache file format version. Files with another
// version are rebuilt.
const FormatVersion uint16 = 1

// fileExt is the extension of cache files.
const fileExt = ".gband"

// Key identifies the compiled data of one font.
type Key struct {
	_ struct{} `cbor:",toarray"`

	// Name is the case-folded base name of the font file without extension.
	Name string

	// ContentHash is the BLAKE2b-256 digest of the font bytes.
	ContentHash [blake2b.Size256]byte

	// Version is the cache format version.
	Version uint16
}

// NewKey derives the key of a font from its file name and contents.
func NewKey(name string, fontData []byte) Key {
	return Key{
		Name:        keyName(name),
		ContentHash: blake2b.Sum256(fontData),
		Version:     FormatVersion,
	}
}

// keyName case-folds the base name of a font path and strips its
// extension. Characters that are unsafe in file names become '_'.
func keyName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = cases.Fold().String(base)
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		if r < 0x20 {
			return '_'
		}
		return r
	}, base)
	if base == "" || base == "." {
		return "font"
	}
	return base
}

// FileName returns the cache file name of the key: the name, the first 16
// hex digits of the content hash and the .gband extension.
func (k Key) FileName() string {
	return k.Name + "-" + hex.EncodeToString(k.ContentHash[:8]) + fileExt
}

// String returns the file name of the key.
func (k Key) String() string {
	return k.FileName()
}
