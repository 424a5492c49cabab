// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texture/gpucore"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

func newTestAdapter(t *testing.T) *HALAdapter {
	t.Helper()
	device, queue := createNoopDevice(t)
	a := NewHALAdapter(device, queue)
	t.Cleanup(a.Destroy)
	return a
}

func createRGBA(t *testing.T, a *HALAdapter, w, h int) gpucore.TextureID {
	t.Helper()
	id, err := a.CreateTexture(&gpucore.TextureDesc{
		Label: "test", Width: w, Height: h, Format: gpucore.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	return id
}

func TestHALAdapter_CreateWriteDestroy(t *testing.T) {
	a := newTestAdapter(t)

	id := createRGBA(t, a, 2, 1)
	if id == gpucore.InvalidID {
		t.Fatal("CreateTexture returned InvalidID")
	}
	if err := a.WriteTexture(id, []byte{255, 0, 0, 255, 0, 255, 0, 255}); err != nil {
		t.Errorf("WriteTexture: %v", err)
	}
	if got := a.Stats().Textures; got != 1 {
		t.Errorf("Stats.Textures = %d, want 1", got)
	}

	a.DestroyTexture(id)
	a.DestroyTexture(id) // unknown IDs are ignored
	if got := a.Stats().Textures; got != 0 {
		t.Errorf("Stats.Textures after destroy = %d, want 0", got)
	}
}

// failingQueue rejects every texture upload.
type failingQueue struct {
	hal.Queue
	err error
}

func (q failingQueue) WriteTexture(*hal.ImageCopyTexture, []byte, *hal.ImageDataLayout, *hal.Extent3D) error {
	return q.err
}

func TestHALAdapter_WriteTextureQueueError(t *testing.T) {
	device, queue := createNoopDevice(t)
	errUpload := errors.New("upload pipeline failed")
	a := NewHALAdapter(device, failingQueue{Queue: queue, err: errUpload})
	t.Cleanup(a.Destroy)

	id := createRGBA(t, a, 1, 1)
	if err := a.WriteTexture(id, make([]byte, 4)); !errors.Is(err, errUpload) {
		t.Errorf("WriteTexture error = %v, want %v", err, errUpload)
	}
}

func TestHALAdapter_UniqueIDs(t *testing.T) {
	a := newTestAdapter(t)
	seen := make(map[uint64]bool)
	for range 8 {
		id := uint64(createRGBA(t, a, 1, 1))
		if seen[id] {
			t.Fatalf("duplicate texture ID %d", id)
		}
		seen[id] = true

		sid, err := a.CreateSampler(&gpucore.SamplerDesc{})
		if err != nil {
			t.Fatal(err)
		}
		if seen[uint64(sid)] {
			t.Fatalf("sampler ID %d collides", sid)
		}
		seen[uint64(sid)] = true
	}
}

func TestHALAdapter_CreateTextureErrors(t *testing.T) {
	a := newTestAdapter(t)
	tests := []struct {
		name string
		desc *gpucore.TextureDesc
		want error
	}{
		{"nil", nil, ErrInvalidDescriptor},
		{"zero width", &gpucore.TextureDesc{Width: 0, Height: 1, Format: gpucore.TextureFormatRGBA8Unorm}, ErrInvalidDimensions},
		{"negative height", &gpucore.TextureDesc{Width: 1, Height: -2, Format: gpucore.TextureFormatRGBA8Unorm}, ErrInvalidDimensions},
		{"unknown format", &gpucore.TextureDesc{Width: 1, Height: 1}, ErrInvalidDescriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.CreateTexture(tt.desc); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if a.Stats().Textures != 0 {
		t.Errorf("failed creates left %d textures", a.Stats().Textures)
	}
}

func TestHALAdapter_WriteTextureErrors(t *testing.T) {
	a := newTestAdapter(t)
	id := createRGBA(t, a, 2, 2)

	if err := a.WriteTexture(id, make([]byte, 15)); !errors.Is(err, ErrDataSize) {
		t.Errorf("short data error = %v, want ErrDataSize", err)
	}
	if err := a.WriteTexture(id, make([]byte, 17)); !errors.Is(err, ErrDataSize) {
		t.Errorf("long data error = %v, want ErrDataSize", err)
	}
	if err := a.WriteTexture(id+1000, make([]byte, 16)); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("unknown id error = %v, want ErrUnknownTexture", err)
	}
}

func TestHALAdapter_CreateSampler(t *testing.T) {
	a := newTestAdapter(t)

	for _, wrap := range []gpucore.WrapMode{gpucore.WrapClampToEdge, gpucore.WrapRepeat, gpucore.WrapMirroredRepeat} {
		id, err := a.CreateSampler(&gpucore.SamplerDesc{
			MinFilter: gpucore.FilterNearest, MagFilter: gpucore.FilterLinear, Wrap: wrap,
		})
		if err != nil {
			t.Errorf("CreateSampler(%v): %v", wrap, err)
			continue
		}
		a.DestroySampler(id)
	}

	if _, err := a.CreateSampler(nil); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("nil desc error = %v", err)
	}
	if _, err := a.CreateSampler(&gpucore.SamplerDesc{Wrap: gpucore.WrapMode(42)}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("bad wrap error = %v", err)
	}
	if a.Stats().Samplers != 0 {
		t.Errorf("Stats.Samplers = %d, want 0", a.Stats().Samplers)
	}
}

// =============================================================================
// Binding Tests
// =============================================================================

func TestHALAdapter_BindingTable(t *testing.T) {
	a := newTestAdapter(t)
	tex := createRGBA(t, a, 1, 1)
	smp, err := a.CreateSampler(&gpucore.SamplerDesc{})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, ok := a.Binding(0); ok {
		t.Error("unit 0 bound before BindTexture")
	}

	a.ActiveTexture(2)
	a.BindTexture(tex, smp)

	if a.ActiveUnit() != 2 {
		t.Errorf("ActiveUnit = %d, want 2", a.ActiveUnit())
	}
	view, sampler, ok := a.Binding(2)
	if !ok || view == nil || sampler == nil {
		t.Fatalf("Binding(2) = %v, %v, %v", view, sampler, ok)
	}
	if _, _, ok := a.Binding(0); ok {
		t.Error("unit 0 picked up the unit 2 binding")
	}

	// Later binds replace earlier ones on the same unit only.
	other := createRGBA(t, a, 1, 1)
	a.ActiveTexture(0)
	a.BindTexture(other, smp)
	if _, _, ok := a.Binding(2); !ok {
		t.Error("unit 2 lost its binding")
	}

	a.DestroyTexture(tex)
	if _, _, ok := a.Binding(2); ok {
		t.Error("unit 2 still bound after its texture was destroyed")
	}
	a.DestroySampler(smp)
	if _, _, ok := a.Binding(0); ok {
		t.Error("unit 0 still complete after its sampler was destroyed")
	}
}

func TestHALAdapter_ActiveTextureOutOfRange(t *testing.T) {
	a := newTestAdapter(t)
	a.ActiveTexture(5)
	a.ActiveTexture(gpucore.MaxTextureUnits)
	if a.ActiveUnit() != 5 {
		t.Errorf("ActiveUnit = %d, want 5 (out-of-range unit ignored)", a.ActiveUnit())
	}
	if _, _, ok := a.Binding(gpucore.MaxTextureUnits); ok {
		t.Error("Binding out of range reported ok")
	}
}

func TestHALAdapter_DestroyReleasesLeaks(t *testing.T) {
	device, queue := createNoopDevice(t)
	a := NewHALAdapter(device, queue)
	createRGBA(t, a, 4, 4)
	if _, err := a.CreateSampler(&gpucore.SamplerDesc{}); err != nil {
		t.Fatal(err)
	}

	a.Destroy()
	a.Destroy()

	if s := a.Stats(); s.Textures != 0 || s.Samplers != 0 {
		t.Errorf("Stats after Destroy = %+v", s)
	}
}

func TestNewNoopAdapter(t *testing.T) {
	a, err := NewNoopAdapter()
	if err != nil {
		t.Fatalf("NewNoopAdapter: %v", err)
	}
	defer a.Destroy()

	id := createRGBA(t, a, 3, 3)
	if err := a.WriteTexture(id, make([]byte, 36)); err != nil {
		t.Errorf("WriteTexture: %v", err)
	}
}
