// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/texture/gpucore"
)

func convertTextureFormat(f gpucore.TextureFormat) (gputypes.TextureFormat, bool) {
	switch f {
	case gpucore.TextureFormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	default:
		return gputypes.TextureFormatUndefined, false
	}
}

func convertFilterMode(m gpucore.FilterMode) (gputypes.FilterMode, bool) {
	switch m {
	case gpucore.FilterLinear:
		return gputypes.FilterModeLinear, true
	case gpucore.FilterNearest:
		return gputypes.FilterModeNearest, true
	default:
		return gputypes.FilterModeNearest, false
	}
}

func convertWrapMode(m gpucore.WrapMode) (gputypes.AddressMode, bool) {
	switch m {
	case gpucore.WrapClampToEdge:
		return gputypes.AddressModeClampToEdge, true
	case gpucore.WrapRepeat:
		return gputypes.AddressModeRepeat, true
	case gpucore.WrapMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat, true
	default:
		return gputypes.AddressModeClampToEdge, false
	}
}
