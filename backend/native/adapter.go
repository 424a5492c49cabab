// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native implements gpucore.Device on top of gogpu/wgpu/hal.
package native

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texture/gpucore"
	"github.com/gogpu/wgpu/hal"
)

// textureEntry tracks a texture and its default view.
type textureEntry struct {
	texture hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32
	format  gpucore.TextureFormat
}

// binding is what a texture unit currently holds.
type binding struct {
	texture gpucore.TextureID
	sampler gpucore.SamplerID
}

// HALAdapter implements gpucore.Device using gogpu/wgpu/hal directly.
// It provides a bridge between the gpucore abstraction and the HAL layer.
//
// WebGPU has no global texture units. HALAdapter keeps the active unit and
// the per-unit binding table itself; renderers read it back with Binding
// when they build bind groups.
//
// Thread Safety: the resource maps and the binding table are protected by
// a mutex, but the active unit is still shared state: interleaving
// ActiveTexture/BindTexture pairs from several goroutines binds textures to
// the wrong units. Drive the adapter from the render goroutine.
type HALAdapter struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	// ID generation
	nextID atomic.Uint64

	// Resource tracking maps gpucore IDs to hal resources
	textures map[gpucore.TextureID]*textureEntry
	samplers map[gpucore.SamplerID]hal.Sampler

	// Texture unit state
	active gpucore.TextureUnit
	units  [gpucore.MaxTextureUnits]binding

	// release tears down a device this adapter created itself.
	release func()
}

// NewHALAdapter creates a new HALAdapter wrapping the given device and queue.
// The adapter does not take ownership of either.
func NewHALAdapter(device hal.Device, queue hal.Queue) *HALAdapter {
	adapter := &HALAdapter{
		device:   device,
		queue:    queue,
		textures: make(map[gpucore.TextureID]*textureEntry),
		samplers: make(map[gpucore.SamplerID]hal.Sampler),
	}

	// Start ID generation at 1 (0 is invalid)
	adapter.nextID.Store(1)

	return adapter
}

// Device returns the underlying HAL device.
func (a *HALAdapter) Device() hal.Device {
	return a.device
}

// Queue returns the underlying HAL queue.
func (a *HALAdapter) Queue() hal.Queue {
	return a.queue
}

// newID generates a unique resource ID.
func (a *HALAdapter) newID() uint64 {
	return a.nextID.Add(1) - 1
}

// === Texture Management ===

// CreateTexture creates a 2D texture and its default view.
func (a *HALAdapter) CreateTexture(desc *gpucore.TextureDesc) (gpucore.TextureID, error) {
	if desc == nil {
		return gpucore.InvalidID, fmt.Errorf("%w: nil texture descriptor", ErrInvalidDescriptor)
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return gpucore.InvalidID, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, desc.Width, desc.Height)
	}
	format, ok := convertTextureFormat(desc.Format)
	if !ok {
		return gpucore.InvalidID, fmt.Errorf("%w: format %v", ErrInvalidDescriptor, desc.Format)
	}

	//nolint:gosec // G115: dimensions validated positive above
	size := hal.Extent3D{Width: uint32(desc.Width), Height: uint32(desc.Height), DepthOrArrayLayers: 1}

	texture, err := a.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("failed to create texture: %w", err)
	}

	view, err := a.device.CreateTextureView(texture, &hal.TextureViewDescriptor{
		Label:         desc.Label + " (default view)",
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		a.device.DestroyTexture(texture)
		return gpucore.InvalidID, fmt.Errorf("failed to create texture view: %w", err)
	}

	id := gpucore.TextureID(a.newID())

	a.mu.Lock()
	a.textures[id] = &textureEntry{
		texture: texture,
		view:    view,
		width:   size.Width,
		height:  size.Height,
		format:  desc.Format,
	}
	a.mu.Unlock()

	slogger().Debug("native: texture created",
		"id", uint64(id), "label", desc.Label, "width", size.Width, "height", size.Height)
	return id, nil
}

// WriteTexture uploads data as the full content of mip level 0.
// len(data) must equal width*height*bytesPerPixel.
func (a *HALAdapter) WriteTexture(id gpucore.TextureID, data []byte) error {
	a.mu.RLock()
	entry, ok := a.textures[id]
	a.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}

	bpp := uint32(entry.format.BytesPerPixel()) //nolint:gosec // G115: small constant
	want := int(entry.width) * int(entry.height) * int(bpp)
	if len(data) != want {
		return fmt.Errorf("%w: texture %d needs %d bytes, got %d", ErrDataSize, id, want, len(data))
	}

	err := a.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  entry.texture,
			MipLevel: 0,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  entry.width * bpp,
			RowsPerImage: entry.height,
		},
		&hal.Extent3D{Width: entry.width, Height: entry.height, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("failed to write texture %d: %w", id, err)
	}
	return nil
}

// DestroyTexture releases a GPU texture and its default view.
// Texture units the texture is bound to become empty.
func (a *HALAdapter) DestroyTexture(id gpucore.TextureID) {
	a.mu.Lock()
	entry, ok := a.textures[id]
	if ok {
		delete(a.textures, id)
		for i := range a.units {
			if a.units[i].texture == id {
				a.units[i] = binding{}
			}
		}
	}
	a.mu.Unlock()

	if !ok {
		return
	}
	a.device.DestroyTextureView(entry.view)
	a.device.DestroyTexture(entry.texture)
	slogger().Debug("native: texture destroyed", "id", uint64(id))
}

// === Sampler Management ===

// CreateSampler creates a sampler. Wrapping applies to U and V; W follows.
func (a *HALAdapter) CreateSampler(desc *gpucore.SamplerDesc) (gpucore.SamplerID, error) {
	if desc == nil {
		return gpucore.InvalidID, fmt.Errorf("%w: nil sampler descriptor", ErrInvalidDescriptor)
	}
	minFilter, ok1 := convertFilterMode(desc.MinFilter)
	magFilter, ok2 := convertFilterMode(desc.MagFilter)
	wrap, ok3 := convertWrapMode(desc.Wrap)
	if !ok1 || !ok2 || !ok3 {
		return gpucore.InvalidID, fmt.Errorf("%w: sampler %v/%v/%v",
			ErrInvalidDescriptor, desc.MinFilter, desc.MagFilter, desc.Wrap)
	}

	sampler, err := a.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        desc.Label,
		AddressModeU: wrap,
		AddressModeV: wrap,
		AddressModeW: wrap,
		MagFilter:    magFilter,
		MinFilter:    minFilter,
		MipmapFilter: gputypes.FilterModeNearest, // single mip level
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("failed to create sampler: %w", err)
	}

	id := gpucore.SamplerID(a.newID())

	a.mu.Lock()
	a.samplers[id] = sampler
	a.mu.Unlock()

	return id, nil
}

// DestroySampler releases a sampler.
// Texture units holding the sampler keep their texture but lose the sampler.
func (a *HALAdapter) DestroySampler(id gpucore.SamplerID) {
	a.mu.Lock()
	sampler, ok := a.samplers[id]
	if ok {
		delete(a.samplers, id)
		for i := range a.units {
			if a.units[i].sampler == id {
				a.units[i].sampler = gpucore.InvalidID
			}
		}
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroySampler(sampler)
	}
}

// === Binding ===

// ActiveTexture selects the unit BindTexture targets.
// Units outside [0, MaxTextureUnits) are ignored.
func (a *HALAdapter) ActiveTexture(unit gpucore.TextureUnit) {
	if unit >= gpucore.MaxTextureUnits {
		slogger().Warn("native: texture unit out of range", "unit", uint32(unit), "max", gpucore.MaxTextureUnits)
		return
	}
	a.mu.Lock()
	a.active = unit
	a.mu.Unlock()
}

// BindTexture binds a texture and sampler to the active unit.
func (a *HALAdapter) BindTexture(texture gpucore.TextureID, sampler gpucore.SamplerID) {
	a.mu.Lock()
	a.units[a.active] = binding{texture: texture, sampler: sampler}
	a.mu.Unlock()
}

// ActiveUnit returns the currently active texture unit.
func (a *HALAdapter) ActiveUnit() gpucore.TextureUnit {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.active
}

// Binding returns the texture view and sampler bound to unit.
// ok is false when the unit is out of range, empty, or its texture or
// sampler no longer exists.
func (a *HALAdapter) Binding(unit gpucore.TextureUnit) (view hal.TextureView, sampler hal.Sampler, ok bool) {
	if unit >= gpucore.MaxTextureUnits {
		return nil, nil, false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	b := a.units[unit]
	entry, hasTex := a.textures[b.texture]
	s, hasSampler := a.samplers[b.sampler]
	if !hasTex || !hasSampler {
		return nil, nil, false
	}
	return entry.view, s, true
}

// === Lifecycle ===

// AdapterStats reports resources the adapter currently tracks.
type AdapterStats struct {
	Textures int
	Samplers int
}

// Stats returns the number of live textures and samplers.
func (a *HALAdapter) Stats() AdapterStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AdapterStats{Textures: len(a.textures), Samplers: len(a.samplers)}
}

// Destroy releases every resource still tracked by the adapter and, for
// adapters created by NewNoopAdapter, the device itself. Safe to call
// multiple times.
func (a *HALAdapter) Destroy() {
	a.mu.Lock()
	textures := a.textures
	samplers := a.samplers
	release := a.release
	a.textures = make(map[gpucore.TextureID]*textureEntry)
	a.samplers = make(map[gpucore.SamplerID]hal.Sampler)
	a.units = [gpucore.MaxTextureUnits]binding{}
	a.active = 0
	a.release = nil
	a.mu.Unlock()

	if len(textures) > 0 || len(samplers) > 0 {
		slogger().Warn("native: destroying leaked resources",
			"textures", len(textures), "samplers", len(samplers))
	}
	for _, s := range samplers {
		a.device.DestroySampler(s)
	}
	for _, e := range textures {
		a.device.DestroyTextureView(e.view)
		a.device.DestroyTexture(e.texture)
	}
	if release != nil {
		release()
	}
}

// Ensure HALAdapter implements gpucore.Device.
var _ gpucore.Device = (*HALAdapter)(nil)
