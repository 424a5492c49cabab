// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"
)

// NewNoopAdapter creates an adapter on the wgpu noop HAL. Resources are
// tracked and validated but nothing reaches a GPU, which makes it suitable
// for headless tools and tests. Destroy releases the device and instance.
func NewNoopAdapter() (*HALAdapter, error) {
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("native: create noop instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, errors.New("native: noop instance has no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("native: open noop device: %w", err)
	}

	a := NewHALAdapter(openDev.Device, openDev.Queue)
	a.release = func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return a, nil
}
