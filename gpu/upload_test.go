// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fakeBuffer stands in for a hal.Buffer. Calling any hal.Buffer method on
// it panics; the uploader never does.
type fakeBuffer struct {
	hal.Buffer
	label string
	size  uint64
	data  []byte
}

// fakeBackend records buffer operations.
type fakeBackend struct {
	failOn    string
	created   []*fakeBuffer
	destroyed []*fakeBuffer
}

func (b *fakeBackend) createBuffer(label string, size uint64) (hal.Buffer, error) {
	if label == b.failOn {
		return nil, errors.New("out of memory")
	}
	buf := &fakeBuffer{label: label, size: size}
	b.created = append(b.created, buf)
	return buf, nil
}

func (b *fakeBackend) writeBuffer(buf hal.Buffer, data []byte) {
	fb := buf.(*fakeBuffer)
	fb.data = append([]byte{}, data...)
}

func (b *fakeBackend) destroyBuffer(buf hal.Buffer) {
	b.destroyed = append(b.destroyed, buf.(*fakeBuffer))
}

func TestUploader_Upload(t *testing.T) {
	backend := &fakeBackend{}
	u := &Uploader{backend: backend}
	d := testData()

	if _, ok := u.Buffers(); ok {
		t.Error("Buffers reported before Upload")
	}
	if err := u.Upload(d); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	bufs, ok := u.Buffers()
	if !ok {
		t.Fatal("Buffers not reported after Upload")
	}
	layout := Encode(d)
	tests := []struct {
		buf   hal.Buffer
		label string
		want  []byte
	}{
		{bufs.Curves, "glyphband_curves", layout.Curves},
		{bufs.HorBands, "glyphband_hor_bands", layout.HorBands},
		{bufs.VerBands, "glyphband_ver_bands", layout.VerBands},
		{bufs.Glyphs, "glyphband_glyphs", layout.Glyphs},
	}
	for i, tt := range tests {
		fb := tt.buf.(*fakeBuffer)
		if fb.label != tt.label {
			t.Errorf("buffer %d label = %q, want %q", i, fb.label, tt.label)
		}
		if !bytes.Equal(fb.data, tt.want) {
			t.Errorf("%s contents differ from the layout", tt.label)
		}
		if bufs.Sizes[i] != uint64(len(tt.want)) {
			t.Errorf("%s size = %d, want %d", tt.label, bufs.Sizes[i], len(tt.want))
		}
	}
}

func TestUploader_ReplaceAndDestroy(t *testing.T) {
	backend := &fakeBackend{}
	u := &Uploader{backend: backend}

	if err := u.Upload(testData()); err != nil {
		t.Fatal(err)
	}
	first, _ := u.Buffers()
	if err := u.Upload(testData()); err != nil {
		t.Fatal(err)
	}
	if len(backend.destroyed) != 4 {
		t.Fatalf("destroyed %d buffers on replace, want 4", len(backend.destroyed))
	}
	if backend.destroyed[0] != first.Curves.(*fakeBuffer) {
		t.Error("replace destroyed the wrong buffers")
	}

	u.Destroy()
	if len(backend.destroyed) != 8 {
		t.Errorf("destroyed %d buffers in total, want 8", len(backend.destroyed))
	}
	if _, ok := u.Buffers(); ok {
		t.Error("Buffers reported after Destroy")
	}

	// A second Destroy is a no-op.
	u.Destroy()
	if len(backend.destroyed) != 8 {
		t.Errorf("second Destroy released %d more buffers", len(backend.destroyed)-8)
	}
}

func TestUploader_CreateFailureKeepsPrevious(t *testing.T) {
	backend := &fakeBackend{}
	u := &Uploader{backend: backend}
	if err := u.Upload(testData()); err != nil {
		t.Fatal(err)
	}
	before, _ := u.Buffers()

	backend.failOn = "glyphband_ver_bands"
	if err := u.Upload(testData()); err == nil {
		t.Fatal("Upload succeeded with a failing backend")
	}

	// The two buffers created before the failure are released.
	if len(backend.destroyed) != 2 {
		t.Errorf("destroyed %d buffers, want 2", len(backend.destroyed))
	}
	after, ok := u.Buffers()
	if !ok || after != before {
		t.Error("previous buffers were not kept")
	}
}

func TestUploader_EmptyArrays(t *testing.T) {
	backend := &fakeBackend{}
	u := &Uploader{backend: backend}
	d := testData()
	d.Curves = d.Curves[:0]
	d.HorBands = nil

	if err := u.Upload(d); err != nil {
		t.Fatal(err)
	}
	bufs, _ := u.Buffers()
	if bufs.Sizes[0] != copyAlignment || bufs.Sizes[1] != copyAlignment {
		t.Errorf("empty buffer sizes = %v, want %d", bufs.Sizes[:2], copyAlignment)
	}
	if fb := bufs.Curves.(*fakeBuffer); fb.data != nil {
		t.Error("empty array was written")
	}
}

func TestUploader_NilData(t *testing.T) {
	u := &Uploader{backend: &fakeBackend{}}
	if err := u.Upload(nil); !errors.Is(err, ErrNilData) {
		t.Errorf("Upload(nil) = %v, want %v", err, ErrNilData)
	}
}

func TestNewUploader_Nil(t *testing.T) {
	if _, err := NewUploader(nil, nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewUploader(nil, nil) = %v, want %v", err, ErrNilDevice)
	}
}

func TestBufferUsage(t *testing.T) {
	if bufferUsage&gputypes.BufferUsageStorage == 0 || bufferUsage&gputypes.BufferUsageCopyDst == 0 {
		t.Errorf("bufferUsage = %v, want Storage|CopyDst", bufferUsage)
	}
}

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider without HAL access.
type mockProvider struct{}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

// mockHALProvider exposes values that are not HAL types.
type mockHALProvider struct {
	mockProvider
}

func (m *mockHALProvider) HalDevice() any { return "device" }
func (m *mockHALProvider) HalQueue() any  { return "queue" }

func TestNewUploaderFromProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
	}{
		{"no HAL", &mockProvider{}},
		{"wrong HAL types", &mockHALProvider{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUploaderFromProvider(tt.provider)
			if !errors.Is(err, ErrNoHAL) {
				t.Errorf("err = %v, want %v", err, ErrNoHAL)
			}
			if u != nil {
				t.Error("uploader returned with an error")
			}
		})
	}
}
