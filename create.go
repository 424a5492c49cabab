package texture

import (
	"fmt"

	"github.com/gogpu/texture/gpucore"
)

// Create uploads an RGBA8 pixel buffer into a new device texture.
//
// data holds width*height pixels, row-major, 4 bytes per pixel in R, G, B, A
// order. It is passed to the device unmodified. Sampling defaults to linear
// minification and magnification with clamp-to-edge wrapping on both axes;
// see the With* options to change it.
//
// Create returns an error matching ErrInvalidArgument when dev is nil, name
// is empty, a dimension is not positive or len(data) != width*height*4, and
// ErrNameInUse when the target registry already holds name. All of these
// are checked before any device call.
//
// Example:
//
//	// 2x1 texture: opaque red, opaque green
//	tex, err := texture.Create(dev, "rg", []byte{
//	    255, 0, 0, 255,
//	    0, 255, 0, 255,
//	}, 2, 1)
func Create(dev gpucore.Device, name string, data []byte, width, height int, opts ...Option) (*Texture, error) {
	if err := validate(dev, name, data, width, height); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	if o.register {
		if err := o.registry.reserve(name); err != nil {
			return nil, err
		}
	}

	tex, err := upload(dev, name, data, width, height, &o.sampler)
	if err != nil {
		if o.register {
			o.registry.unreserve(name)
		}
		return nil, err
	}

	if o.register {
		o.registry.fill(tex)
	}
	return tex, nil
}

// validate checks the Create preconditions.
func validate(dev gpucore.Device, name string, data []byte, width, height int) error {
	if dev == nil {
		return ErrNilDevice
	}
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidArgument)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	want := width * height * gpucore.TextureFormatRGBA8Unorm.BytesPerPixel()
	if want/height/gpucore.TextureFormatRGBA8Unorm.BytesPerPixel() != width {
		return fmt.Errorf("%w: dimensions %dx%d overflow", ErrInvalidArgument, width, height)
	}
	if len(data) != want {
		return fmt.Errorf("%w: %dx%d RGBA8 needs %d bytes, got %d",
			ErrInvalidArgument, width, height, want, len(data))
	}
	return nil
}

// upload allocates the device texture, writes data, and creates the sampler.
// Resources allocated before a failing step are released before returning.
func upload(dev gpucore.Device, name string, data []byte, width, height int, sampling *gpucore.SamplerDesc) (*Texture, error) {
	id, err := dev.CreateTexture(&gpucore.TextureDesc{
		Label:  name,
		Width:  width,
		Height: height,
		Format: gpucore.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		return nil, fmt.Errorf("texture: create %q: %w", name, err)
	}

	if err := dev.WriteTexture(id, data); err != nil {
		dev.DestroyTexture(id)
		return nil, fmt.Errorf("texture: upload %q: %w", name, err)
	}

	desc := *sampling
	desc.Label = name + " (sampler)"
	sampler, err := dev.CreateSampler(&desc)
	if err != nil {
		dev.DestroyTexture(id)
		return nil, fmt.Errorf("texture: sampler for %q: %w", name, err)
	}

	return newTexture(name, dev, id, sampler, width, height), nil
}
