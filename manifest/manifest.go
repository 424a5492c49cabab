// Package manifest loads sets of textures declared in a TOML file.
//
// A manifest lists textures by name and asset file, with optional sampling:
//
//	[defaults]
//	wrap = "repeat"
//
//	[[texture]]
//	name = "grass"
//	file = "grass"
//	min_filter = "nearest"
//	mag_filter = "nearest"
//
// Entries inherit unset sampling knobs from [defaults], which in turn
// default to linear filtering with clamp-to-edge wrapping.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/texture"
	"github.com/gogpu/texture/gpucore"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned by Validate and Parse for malformed manifests.
var ErrInvalid = errors.New("manifest: invalid")

// Sampling holds optional sampling knobs. Nil fields inherit.
type Sampling struct {
	MinFilter *gpucore.FilterMode `toml:"min_filter,omitempty"`
	MagFilter *gpucore.FilterMode `toml:"mag_filter,omitempty"`
	Wrap      *gpucore.WrapMode   `toml:"wrap,omitempty"`
}

// Entry declares one texture.
type Entry struct {
	Name string `toml:"name"`
	File string `toml:"file"`
	Sampling
}

// Manifest is a parsed texture manifest.
type Manifest struct {
	Defaults Sampling `toml:"defaults"`
	Textures []Entry  `toml:"texture"`
}

// Parse decodes a manifest from r and validates it. Unknown keys are errors.
func Parse(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadFile parses the manifest stored at path.
func ReadFile(path string) (*Manifest, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks that every entry has a unique non-empty name and a file.
func (m *Manifest) Validate() error {
	seen := make(map[string]int, len(m.Textures))
	for i, e := range m.Textures {
		switch {
		case e.Name == "":
			return fmt.Errorf("%w: texture #%d has no name", ErrInvalid, i+1)
		case e.File == "":
			return fmt.Errorf("%w: texture %q has no file", ErrInvalid, e.Name)
		}
		if j, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: texture %q declared twice (#%d and #%d)", ErrInvalid, e.Name, j+1, i+1)
		}
		seen[e.Name] = i
	}
	return nil
}

// SamplerFor resolves the sampling of e against the manifest defaults.
func (m *Manifest) SamplerFor(e Entry) gpucore.SamplerDesc {
	desc := gpucore.DefaultSamplerDesc()
	for _, s := range []Sampling{m.Defaults, e.Sampling} {
		if s.MinFilter != nil {
			desc.MinFilter = *s.MinFilter
		}
		if s.MagFilter != nil {
			desc.MagFilter = *s.MagFilter
		}
		if s.Wrap != nil {
			desc.Wrap = *s.Wrap
		}
	}
	return desc
}

// Load loads every texture in the manifest onto dev, registering them in
// reg (the default registry when reg is nil).
//
// Load is all-or-nothing: on the first failure every texture this call
// already created is deleted and the error is returned.
func (m *Manifest) Load(dev gpucore.Device, reg *texture.Registry) ([]*texture.Texture, error) {
	if reg == nil {
		reg = texture.DefaultRegistry()
	}
	log := texture.Logger()

	loaded := make([]*texture.Texture, 0, len(m.Textures))
	for _, e := range m.Textures {
		t, err := texture.Load(dev, e.Name, e.File,
			texture.WithSampler(m.SamplerFor(e)),
			texture.WithRegistry(reg))
		if err != nil {
			log.Warn("manifest: load failed, rolling back",
				"texture", e.Name, "loaded", len(loaded), "error", err)
			for _, prev := range loaded {
				prev.Delete()
			}
			return nil, fmt.Errorf("manifest: texture %q: %w", e.Name, err)
		}
		loaded = append(loaded, t)
	}

	log.Debug("manifest: loaded", "textures", len(loaded))
	return loaded, nil
}
