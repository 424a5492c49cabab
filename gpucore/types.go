package gpucore

import "fmt"

// Resource IDs
//
// These opaque IDs represent GPU resources. Each Device implementation
// maintains a mapping between IDs and actual backend resources.

// TextureID is an opaque handle to a GPU texture.
type TextureID uint64

// SamplerID is an opaque handle to a GPU sampler.
type SamplerID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// TextureFormat specifies the format of texture data.
type TextureFormat uint32

// Texture formats.
const (
	// TextureFormatRGBA8Unorm is 8-bit RGBA, normalized unsigned integer.
	// Upload data is 4 bytes per pixel in R, G, B, A order.
	TextureFormatRGBA8Unorm TextureFormat = iota + 1
)

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case TextureFormatRGBA8Unorm:
		return 4
	default:
		return 0
	}
}

// String returns a human-readable name for the format.
func (f TextureFormat) String() string {
	switch f {
	case TextureFormatRGBA8Unorm:
		return "RGBA8Unorm"
	default:
		return fmt.Sprintf("TextureFormat(%d)", uint32(f))
	}
}

// TextureUnit identifies a texture binding slot on the device.
// Unit 0 is the default.
type TextureUnit uint32

// MaxTextureUnits is the number of binding slots a Device exposes.
const MaxTextureUnits = 16

// TextureDesc describes a 2D texture to allocate.
type TextureDesc struct {
	// Label is an optional debug label.
	Label string

	// Width is the texture width in pixels.
	Width int

	// Height is the texture height in pixels.
	Height int

	// Format is the pixel format.
	Format TextureFormat
}

// SamplerDesc describes how a texture is filtered and wrapped.
// Wrapping applies identically to the horizontal and vertical axes.
type SamplerDesc struct {
	// Label is an optional debug label.
	Label string

	// MinFilter is used when the texture is minified.
	MinFilter FilterMode

	// MagFilter is used when the texture is magnified.
	MagFilter FilterMode

	// Wrap is the addressing mode for coordinates outside [0, 1].
	Wrap WrapMode
}

// DefaultSamplerDesc returns linear filtering with clamp-to-edge wrapping.
func DefaultSamplerDesc() SamplerDesc {
	return SamplerDesc{
		MinFilter: FilterLinear,
		MagFilter: FilterLinear,
		Wrap:      WrapClampToEdge,
	}
}
