package texture

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/texture/gpucore"
)

// Texture is a 2D image resident in device memory.
//
// A Texture owns exactly one device texture (and the sampler carrying its
// filter and wrap settings) from construction until Delete. Dimensions are
// fixed at creation; the half dimensions are cached alongside them for quad
// placement.
//
// The sampling configuration is applied to the device at creation and is
// not retained: a Texture cannot report its own filter or wrap settings.
//
// Thread Safety:
// Use and Delete issue device calls and must run on the goroutine that owns
// the device. Accessors are safe from any goroutine.
//
// Lifecycle:
//  1. Create via Create() or Load()
//  2. Bind with Use() while rendering
//  3. Call Delete() when done; the Texture must not be used afterwards
type Texture struct {
	name    string
	id      gpucore.TextureID
	sampler gpucore.SamplerID

	width      int
	height     int
	halfWidth  float64
	halfHeight float64

	device   gpucore.Device
	registry *Registry

	released atomic.Bool
}

// newTexture wraps freshly allocated device resources.
// Width, height and the half dimensions are set together here and never again.
func newTexture(name string, dev gpucore.Device, id gpucore.TextureID, sampler gpucore.SamplerID, width, height int) *Texture {
	t := &Texture{
		name:       name,
		id:         id,
		sampler:    sampler,
		width:      width,
		height:     height,
		halfWidth:  float64(width) / 2,
		halfHeight: float64(height) / 2,
		device:     dev,
	}
	Logger().Debug("texture created",
		"name", name, "id", uint64(id), "width", width, "height", height)
	return t
}

// Name returns the symbolic name the texture was created with.
func (t *Texture) Name() string {
	return t.name
}

// ID returns the device handle. It is invalid after Delete.
func (t *Texture) ID() gpucore.TextureID {
	return t.id
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// HalfWidth returns Width()/2.
func (t *Texture) HalfWidth() float64 {
	return t.halfWidth
}

// HalfHeight returns Height()/2.
func (t *Texture) HalfHeight() float64 {
	return t.halfHeight
}

// SizeBytes returns the size of the pixel data on the device.
func (t *Texture) SizeBytes() uint64 {
	//nolint:gosec // G115: dimensions are validated positive at creation
	return uint64(t.width) * uint64(t.height) * uint64(gpucore.TextureFormatRGBA8Unorm.BytesPerPixel())
}

// IsReleased reports whether Delete has been called.
func (t *Texture) IsReleased() bool {
	return t.released.Load()
}

// Use makes unit the active texture unit and binds the texture to it.
//
// The active unit is shared device state; Use mutates it as a side effect.
// Calling Use after Delete is a caller error and is not detected.
func (t *Texture) Use(unit Unit) {
	t.device.ActiveTexture(unit)
	t.device.BindTexture(t.id, t.sampler)
}

// Delete releases the device texture and its sampler.
// Only the first call has an effect; later calls are no-ops.
func (t *Texture) Delete() {
	if t.released.Swap(true) {
		return // Already released
	}

	if t.registry != nil {
		t.registry.remove(t)
	}

	t.device.DestroySampler(t.sampler)
	t.device.DestroyTexture(t.id)

	Logger().Debug("texture released", "name", t.name, "id", uint64(t.id))
}

// String returns a string representation of the texture.
func (t *Texture) String() string {
	status := "live"
	if t.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("Texture[%s #%d %dx%d %s]", t.name, t.id, t.width, t.height, status)
}
