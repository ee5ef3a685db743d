// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import "errors"

// Sentinel errors for cache package.
var (
	// ErrBadSignature is returned when a file does not start with the cache
	// signature.
	ErrBadSignature = errors.New("cache: bad file signature")

	// ErrVersion is returned when a file carries another format version.
	ErrVersion = errors.New("cache: unsupported format version")

	// ErrKeyMismatch is returned when a file was written for another key.
	ErrKeyMismatch = errors.New("cache: key mismatch")

	// ErrNilData is returned when nil data is encoded or stored.
	ErrNilData = errors.New("cache: nil font drawing data")
)

// WriteError reports a failure to store a cache file. The data that was
// being stored is still valid and is returned alongside this error.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "cache: write " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
