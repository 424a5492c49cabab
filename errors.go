package texture

import (
	"errors"
	"fmt"
)

// Texture errors.
var (
	// ErrResourceNotFound is returned by Load when the resolved asset file
	// does not exist.
	ErrResourceNotFound = errors.New("texture: resource not found")

	// ErrDecodeFailure is returned by Load when the asset exists but cannot
	// be decoded into a 4-channel image.
	ErrDecodeFailure = errors.New("texture: decode failure")

	// ErrInvalidArgument is returned by Create when a precondition on its
	// arguments does not hold (dimensions, buffer length, name).
	ErrInvalidArgument = errors.New("texture: invalid argument")

	// ErrNilDevice is returned when no device is supplied.
	// It matches ErrInvalidArgument with errors.Is.
	ErrNilDevice = fmt.Errorf("%w: device is nil", ErrInvalidArgument)

	// ErrNameInUse is returned when registering a texture under a name that
	// a live texture in the same registry already holds.
	ErrNameInUse = errors.New("texture: name already registered")
)
