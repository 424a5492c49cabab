// Package texture manages 2D image textures resident in GPU memory.
//
// # Overview
//
// A [Texture] is created from image data, lives in device memory, is bound
// to a texture unit while rendering and is released explicitly:
//
//	decode-or-accept pixels -> allocate -> configure sampling -> Use -> Delete
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/texture"
//	    "github.com/gogpu/texture/backend/native"
//	)
//
//	dev := native.NewHALAdapter(halDevice, halQueue)
//
//	// Decode <cwd>/Assets/Textures/grass.png and upload it
//	grass, err := texture.Load(dev, "grass", "grass")
//	if err != nil {
//	    return err
//	}
//	defer grass.Delete()
//
//	// Raw RGBA8 pixels, nearest filtering
//	dot, err := texture.Create(dev, "dot", []byte{255, 255, 255, 255}, 1, 1,
//	    texture.WithMagFilter(texture.FilterNearest))
//
//	grass.Use(0)
//
// # Pixel Format
//
// Pixel buffers are RGBA8: row-major, 4 bytes per pixel in R, G, B, A order,
// straight (non-premultiplied) alpha. Create checks the buffer length
// against the declared dimensions.
//
// # Errors
//
// Load reports missing files with [ErrResourceNotFound] and undecodable
// files with [ErrDecodeFailure]; Create reports bad arguments with
// [ErrInvalidArgument]. Match them with errors.Is. No device resource is
// allocated when any of these is returned.
//
// # Thread Safety
//
// Device calls (Create, Use, Delete) must run on the goroutine that owns the
// graphics device. Decoding does not touch the device. The [Registry] is
// safe for concurrent use.
//
// # Limitations
//
// Mipmaps, anisotropic filtering, atlasing, streaming upload and compressed
// formats are not supported. A texture does not remember its sampling
// configuration after creation.
package texture
