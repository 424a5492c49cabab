package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/texture/gpucore"
	"github.com/gogpu/texture/internal/image"
)

// Load decodes an image asset and uploads it as a new texture.
//
// filename is resolved as <cwd>/Assets/Textures/<filename>, with ".png"
// appended unless it already ends in ".png". The image is converted to
// RGBA8 and handed to Create with its decoded dimensions, so the same
// options apply.
//
// Load fails with ErrResourceNotFound when the resolved file does not exist
// and with ErrDecodeFailure when it is not a decodable image. Neither case
// touches the device.
func Load(dev gpucore.Device, name, filename string, opts ...Option) (*Texture, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	path, err := image.ResolvePath(filename)
	if err != nil {
		return nil, fmt.Errorf("texture: load %q: %w", name, err)
	}

	img, err := image.Load(path)
	switch {
	case errors.Is(err, image.ErrNotFound):
		return nil, fmt.Errorf("%w: cannot load texture file %q", ErrResourceNotFound, path)
	case errors.Is(err, image.ErrUndecodable):
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	case err != nil:
		return nil, fmt.Errorf("texture: load %q: %w", name, err)
	}

	pix, width, height := image.Flatten(img)
	defer image.Release(pix)
	return Create(dev, name, pix, width, height, opts...)
}

// ResolvePath returns the file Load would read for filename.
func ResolvePath(filename string) (string, error) {
	return image.ResolvePath(filename)
}
