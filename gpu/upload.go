// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphband"
)

// bufferUsage is the usage of every glyph buffer.
const bufferUsage = gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst

// copyAlignment is the size granularity of buffer writes.
const copyAlignment = 4

// bufferBackend is the subset of a HAL device and queue the uploader uses.
type bufferBackend interface {
	createBuffer(label string, size uint64) (hal.Buffer, error)
	writeBuffer(buf hal.Buffer, data []byte)
	destroyBuffer(buf hal.Buffer)
}

// halBackend forwards to a hal.Device and hal.Queue.
type halBackend struct {
	device hal.Device
	queue  hal.Queue
}

func (b halBackend) createBuffer(label string, size uint64) (hal.Buffer, error) {
	return b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: bufferUsage,
	})
}

func (b halBackend) writeBuffer(buf hal.Buffer, data []byte) {
	b.queue.WriteBuffer(buf, 0, data)
}

func (b halBackend) destroyBuffer(buf hal.Buffer) {
	b.device.DestroyBuffer(buf)
}

// Buffers are the GPU storage buffers of one font, in binding order.
type Buffers struct {
	Curves   hal.Buffer
	HorBands hal.Buffer
	VerBands hal.Buffer
	Glyphs   hal.Buffer

	// Sizes holds the allocated size of each buffer in bytes.
	Sizes [4]uint64
}

// Uploader owns the glyph buffers of one font on one device.
//
// Uploader is safe for concurrent use.
type Uploader struct {
	mu      sync.Mutex
	backend bufferBackend
	buffers Buffers
	loaded  bool
}

// NewUploader creates an uploader over a HAL device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Uploader{backend: halBackend{device: device, queue: queue}}, nil
}

// NewUploaderFromProvider creates an uploader over the device of a host
// application. The provider must also implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func NewUploaderFromProvider(provider gpucontext.DeviceProvider) (*Uploader, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return NewUploader(device, queue)
}

// Upload replaces the buffers with the contents of d. On failure the
// previous buffers are kept.
func (u *Uploader) Upload(d *glyphband.FontDrawingData) error {
	if d == nil {
		return ErrNilData
	}
	layout := Encode(d)
	contents := [4]struct {
		label string
		data  []byte
	}{
		{"glyphband_curves", layout.Curves},
		{"glyphband_hor_bands", layout.HorBands},
		{"glyphband_ver_bands", layout.VerBands},
		{"glyphband_glyphs", layout.Glyphs},
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var created [4]hal.Buffer
	var next Buffers
	for i, c := range contents {
		size := bufferSize(len(c.data))
		buf, err := u.backend.createBuffer(c.label, size)
		if err != nil {
			for _, b := range created[:i] {
				u.backend.destroyBuffer(b)
			}
			return fmt.Errorf("gpu: create %s: %w", c.label, err)
		}
		created[i] = buf
		next.Sizes[i] = size
		if len(c.data) > 0 {
			u.backend.writeBuffer(buf, c.data)
		}
	}
	next.Curves, next.HorBands, next.VerBands, next.Glyphs = created[0], created[1], created[2], created[3]

	u.release()
	u.buffers = next
	u.loaded = true

	glyphband.Logger().Debug("glyphband gpu: buffers uploaded",
		"glyphs", d.NumGlyphs,
		"curveBytes", len(layout.Curves),
		"bandBytes", len(layout.HorBands)+len(layout.VerBands),
		"glyphBytes", len(layout.Glyphs))
	return nil
}

// Buffers returns the current buffers and whether any were uploaded.
func (u *Uploader) Buffers() (Buffers, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.buffers, u.loaded
}

// Destroy releases the buffers. The uploader can be reused afterwards.
func (u *Uploader) Destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.release()
}

// release destroys the current buffers. Callers hold u.mu.
func (u *Uploader) release() {
	if !u.loaded {
		return
	}
	for _, b := range []hal.Buffer{u.buffers.Curves, u.buffers.HorBands, u.buffers.VerBands, u.buffers.Glyphs} {
		u.backend.destroyBuffer(b)
	}
	u.buffers = Buffers{}
	u.loaded = false
}

// bufferSize rounds n up to the copy alignment. Empty arrays still get a
// minimal buffer so every binding is valid.
func bufferSize(n int) uint64 {
	size := (uint64(n) + copyAlignment - 1) &^ (copyAlignment - 1)
	return max(size, copyAlignment)
}
