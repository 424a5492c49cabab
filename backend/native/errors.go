// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "errors"

// Package errors for the HAL backend.
var (
	// ErrInvalidDescriptor is returned for nil or unsupported descriptors.
	ErrInvalidDescriptor = errors.New("native: invalid descriptor")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("native: invalid dimensions")

	// ErrUnknownTexture is returned when a texture ID is not tracked by the adapter.
	ErrUnknownTexture = errors.New("native: unknown texture")

	// ErrDataSize is returned when upload data does not cover the texture exactly.
	ErrDataSize = errors.New("native: data size mismatch")

	// ErrNoHALProvider is returned when a device provider does not expose
	// HAL device and queue.
	ErrNoHALProvider = errors.New("native: provider does not expose HAL types")
)
