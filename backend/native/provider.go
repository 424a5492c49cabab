// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by hosts (e.g. gogpu) that can hand out their
// HAL device and queue.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewHALAdapterFromProvider creates an adapter that shares the GPU device of
// a host application. The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
//
// The host keeps ownership of the device: Destroy on the returned adapter
// releases only textures and samplers the adapter created.
func NewHALAdapterFromProvider(provider gpucontext.DeviceProvider) (*HALAdapter, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrNoHALProvider)
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}

	slogger().Debug("native: using shared device", "surfaceFormat", provider.SurfaceFormat())
	return NewHALAdapter(device, queue), nil
}
