// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/gogpu/glyphband"
)

// signature starts every cache file.
var signature = [8]byte{'G', 'L', 'Y', 'P', 'H', 'B', 'N', 'D'}

// headerSize is the size of the signature plus the format version.
const headerSize = len(signature) + 2

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em

	dm, err := cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		MaxArrayElements:  math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// record is the CBOR body of a cache file.
type record struct {
	_          struct{} `cbor:",toarray"`
	Key        Key
	UnitsPerEm float32
	NumGlyphs  int
	Curves     []glyphband.Curve
	HorBands   []uint32
	VerBands   []uint32
	Glyphs     []glyphRecord
}

// glyphRecord mirrors glyphband.GlyphSummary field for field.
type glyphRecord struct {
	_           struct{} `cbor:",toarray"`
	CurveOffset uint32
	HBandOffset uint32
	VBandOffset uint32
	BandCount   uint32
	Width       float32
	Height      float32
}

func newRecord(key Key, d *glyphband.FontDrawingData) *record {
	glyphs := make([]glyphRecord, len(d.Glyphs))
	for i, g := range d.Glyphs {
		glyphs[i] = glyphRecord{
			CurveOffset: g.CurveOffset,
			HBandOffset: g.HBandOffset,
			VBandOffset: g.VBandOffset,
			BandCount:   g.BandCount,
			Width:       g.Width,
			Height:      g.Height,
		}
	}
	return &record{
		Key:        key,
		UnitsPerEm: d.UnitsPerEm,
		NumGlyphs:  d.NumGlyphs,
		Curves:     d.Curves,
		HorBands:   d.HorBands,
		VerBands:   d.VerBands,
		Glyphs:     glyphs,
	}
}

func (r *record) data() *glyphband.FontDrawingData {
	glyphs := make([]glyphband.GlyphSummary, len(r.Glyphs))
	for i, g := range r.Glyphs {
		glyphs[i] = glyphband.GlyphSummary{
			CurveOffset: g.CurveOffset,
			HBandOffset: g.HBandOffset,
			VBandOffset: g.VBandOffset,
			BandCount:   g.BandCount,
			Width:       g.Width,
			Height:      g.Height,
		}
	}
	return &glyphband.FontDrawingData{
		UnitsPerEm: r.UnitsPerEm,
		NumGlyphs:  r.NumGlyphs,
		Curves:     nonNil(r.Curves),
		HorBands:   nonNil(r.HorBands),
		VerBands:   nonNil(r.VerBands),
		Glyphs:     glyphs,
	}
}

// nonNil returns an empty slice for nil so decoded data compares equal to
// freshly compiled data.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Encode writes the cache file form of d for key to w.
func Encode(w io.Writer, key Key, d *glyphband.FontDrawingData) error {
	if d == nil {
		return ErrNilData
	}

	var header [headerSize]byte
	copy(header[:], signature[:])
	binary.LittleEndian.PutUint16(header[len(signature):], key.Version)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	zw, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
	if err != nil {
		return err
	}
	if err := encMode.NewEncoder(zw).Encode(newRecord(key, d)); err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}
	return zw.Close()
}

// Marshal returns the cache file form of d for key.
func Marshal(key Key, d *glyphband.FontDrawingData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, key, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a cache file written for want and validates its contents.
func Decode(r io.Reader, want Key) (*glyphband.FontDrawingData, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("cache: read header: %w", err)
	}
	if !bytes.Equal(header[:len(signature)], signature[:]) {
		return nil, ErrBadSignature
	}
	if v := binary.LittleEndian.Uint16(header[len(signature):]); v != want.Version {
		return nil, fmt.Errorf("%w: %d, want %d", ErrVersion, v, want.Version)
	}

	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("cache: open body: %w", err)
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("cache: read body: %w", err)
	}

	var rec record
	if err := decMode.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("cache: decode: %w", err)
	}
	if rec.Key != want {
		return nil, ErrKeyMismatch
	}

	d := rec.data()
	if err := glyphband.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Unmarshal decodes a cache file held in memory.
func Unmarshal(b []byte, want Key) (*glyphband.FontDrawingData, error) {
	return Decode(bytes.NewReader(b), want)
}
