// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache persists compiled font drawing data between runs.
//
// # Cache Files
//
// A cache file starts with the 8-byte signature "GLYPHBND" and a
// little-endian uint16 format version, followed by a gzip stream holding the
// CBOR encoding of the compiled data and its [Key]. CBOR uses the core
// deterministic encoding, so equal data always produces equal files.
//
// # Keys
//
// A [Key] names a font by its case-folded file name, a BLAKE2b-256 digest of
// the font bytes and the format version. The digest is part of the file
// name, so a font that changes under the same name never reuses stale data.
//
// # Policy
//
// [FontCache.LoadOrBuild] serves data from an in-process LRU memo, then from
// the cache file, and finally by building it:
//
//	Uninitialized -> Loading  -> Ready
//	              \            \ (rejected)
//	               -> Building -> Ready
//
// A file that fails to decode or validate is rebuilt, never returned as an
// error. A failed write returns the built data together with a *WriteError.
// Files are written to a temporary name and renamed into place, so readers
// never observe a partial file.
package cache
