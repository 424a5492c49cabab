package gpucore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when parsing an unrecognized filter or wrap name.
var ErrUnknownMode = errors.New("gpucore: unknown sampling mode")

// FilterMode selects how texels are sampled.
type FilterMode uint8

// Filter modes.
const (
	// FilterLinear blends the nearest texels.
	FilterLinear FilterMode = iota

	// FilterNearest picks the closest texel.
	FilterNearest
)

// String returns the lowercase name of the filter.
func (m FilterMode) String() string {
	switch m {
	case FilterLinear:
		return "linear"
	case FilterNearest:
		return "nearest"
	default:
		return fmt.Sprintf("FilterMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m FilterMode) MarshalText() ([]byte, error) {
	if m > FilterNearest {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Names are case-insensitive.
func (m *FilterMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "linear":
		*m = FilterLinear
	case "nearest":
		*m = FilterNearest
	default:
		return fmt.Errorf("%w: filter %q", ErrUnknownMode, text)
	}
	return nil
}

// WrapMode selects how coordinates outside [0, 1] are resolved.
type WrapMode uint8

// Wrap modes.
const (
	// WrapClampToEdge clamps coordinates to the edge texels.
	WrapClampToEdge WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat

	// WrapMirroredRepeat tiles the texture, mirroring every other tile.
	WrapMirroredRepeat
)

// String returns the kebab-case name of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapClampToEdge:
		return "clamp-to-edge"
	case WrapRepeat:
		return "repeat"
	case WrapMirroredRepeat:
		return "mirrored-repeat"
	default:
		return fmt.Sprintf("WrapMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m WrapMode) MarshalText() ([]byte, error) {
	if m > WrapMirroredRepeat {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Both kebab-case and snake_case spellings are accepted.
func (m *WrapMode) UnmarshalText(text []byte) error {
	switch strings.ReplaceAll(strings.ToLower(string(text)), "_", "-") {
	case "clamp-to-edge", "clamp":
		*m = WrapClampToEdge
	case "repeat":
		*m = WrapRepeat
	case "mirrored-repeat", "mirror-repeat":
		*m = WrapMirroredRepeat
	default:
		return fmt.Errorf("%w: wrap %q", ErrUnknownMode, text)
	}
	return nil
}
