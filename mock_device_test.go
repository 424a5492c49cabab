package texture

import (
	"bytes"
	"fmt"

	"github.com/gogpu/texture/gpucore"
)

// =============================================================================
// Mock Types for Testing
// =============================================================================

// mockDevice is a test double for gpucore.Device.
type mockDevice struct {
	createTextureFunc func(*gpucore.TextureDesc) (gpucore.TextureID, error)
	writeTextureFunc  func(gpucore.TextureID, []byte) error
	createSamplerFunc func(*gpucore.SamplerDesc) (gpucore.SamplerID, error)

	nextID uint64

	// Track calls for verification
	calls             []string
	texturesCreated   int
	texturesDestroyed int
	samplersCreated   int
	samplersDestroyed int

	lastTextureDesc gpucore.TextureDesc
	lastSamplerDesc gpucore.SamplerDesc
	written         map[gpucore.TextureID][]byte

	activeUnit gpucore.TextureUnit
	bound      map[gpucore.TextureUnit]gpucore.TextureID
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		written: make(map[gpucore.TextureID][]byte),
		bound:   make(map[gpucore.TextureUnit]gpucore.TextureID),
	}
}

func (d *mockDevice) id() uint64 {
	d.nextID++
	return d.nextID
}

func (d *mockDevice) CreateTexture(desc *gpucore.TextureDesc) (gpucore.TextureID, error) {
	d.calls = append(d.calls, "CreateTexture")
	if d.createTextureFunc != nil {
		id, err := d.createTextureFunc(desc)
		if err != nil {
			return gpucore.InvalidID, err
		}
		d.texturesCreated++
		return id, nil
	}
	d.texturesCreated++
	d.lastTextureDesc = *desc
	return gpucore.TextureID(d.id()), nil
}

func (d *mockDevice) WriteTexture(id gpucore.TextureID, data []byte) error {
	d.calls = append(d.calls, "WriteTexture")
	if d.writeTextureFunc != nil {
		if err := d.writeTextureFunc(id, data); err != nil {
			return err
		}
	}
	d.written[id] = bytes.Clone(data)
	return nil
}

func (d *mockDevice) DestroyTexture(id gpucore.TextureID) {
	d.calls = append(d.calls, "DestroyTexture")
	d.texturesDestroyed++
}

func (d *mockDevice) CreateSampler(desc *gpucore.SamplerDesc) (gpucore.SamplerID, error) {
	d.calls = append(d.calls, "CreateSampler")
	if d.createSamplerFunc != nil {
		id, err := d.createSamplerFunc(desc)
		if err != nil {
			return gpucore.InvalidID, err
		}
		d.samplersCreated++
		return id, nil
	}
	d.samplersCreated++
	d.lastSamplerDesc = *desc
	return gpucore.SamplerID(d.id()), nil
}

func (d *mockDevice) DestroySampler(id gpucore.SamplerID) {
	d.calls = append(d.calls, "DestroySampler")
	d.samplersDestroyed++
}

func (d *mockDevice) ActiveTexture(unit gpucore.TextureUnit) {
	d.calls = append(d.calls, fmt.Sprintf("ActiveTexture(%d)", unit))
	d.activeUnit = unit
}

func (d *mockDevice) BindTexture(texture gpucore.TextureID, _ gpucore.SamplerID) {
	d.calls = append(d.calls, "BindTexture")
	d.bound[d.activeUnit] = texture
}

// deviceCalls reports whether any call reached the device.
func (d *mockDevice) deviceCalls() int {
	return len(d.calls)
}
