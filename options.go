package texture

import "github.com/gogpu/texture/gpucore"

// Sampling knobs re-exported from gpucore so callers rarely need to import it.
type (
	// FilterMode selects how texels are sampled.
	FilterMode = gpucore.FilterMode

	// WrapMode selects how coordinates outside [0, 1] are resolved.
	WrapMode = gpucore.WrapMode

	// Unit identifies a texture binding slot.
	Unit = gpucore.TextureUnit
)

// Sampling modes.
const (
	FilterLinear  = gpucore.FilterLinear
	FilterNearest = gpucore.FilterNearest

	WrapClampToEdge    = gpucore.WrapClampToEdge
	WrapRepeat         = gpucore.WrapRepeat
	WrapMirroredRepeat = gpucore.WrapMirroredRepeat
)

// MaxUnits is the number of texture units a device exposes.
const MaxUnits = gpucore.MaxTextureUnits

// Option configures texture creation.
// Use functional options to customize sampling and registration.
//
// Example:
//
//	// Default sampling: linear/linear, clamp-to-edge
//	tex, err := texture.Load(dev, "grass", "grass")
//
//	// Pixel-art sampling that tiles
//	tex, err := texture.Load(dev, "grass", "grass",
//	    texture.WithMinFilter(texture.FilterNearest),
//	    texture.WithMagFilter(texture.FilterNearest),
//	    texture.WithWrap(texture.WrapRepeat))
type Option func(*options)

// options holds optional configuration for texture creation.
type options struct {
	sampler  gpucore.SamplerDesc
	registry *Registry
	register bool
}

// defaultOptions returns the default creation options.
func defaultOptions() options {
	return options{
		sampler:  gpucore.DefaultSamplerDesc(),
		registry: nil, // Resolved to DefaultRegistry() if register is set
		register: true,
	}
}

// WithMinFilter sets the minification filter. Default: FilterLinear.
func WithMinFilter(m FilterMode) Option {
	return func(o *options) {
		o.sampler.MinFilter = m
	}
}

// WithMagFilter sets the magnification filter. Default: FilterLinear.
func WithMagFilter(m FilterMode) Option {
	return func(o *options) {
		o.sampler.MagFilter = m
	}
}

// WithWrap sets the wrap mode for both texture axes. Default: WrapClampToEdge.
func WithWrap(m WrapMode) Option {
	return func(o *options) {
		o.sampler.Wrap = m
	}
}

// WithSampler replaces all three sampling knobs at once.
func WithSampler(desc gpucore.SamplerDesc) Option {
	return func(o *options) {
		o.sampler.MinFilter = desc.MinFilter
		o.sampler.MagFilter = desc.MagFilter
		o.sampler.Wrap = desc.Wrap
	}
}

// WithRegistry registers the new texture in r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
		o.register = r != nil
	}
}

// WithoutRegistration skips registration; the caller alone tracks the texture.
func WithoutRegistration() Option {
	return func(o *options) {
		o.registry = nil
		o.register = false
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.register && o.registry == nil {
		o.registry = DefaultRegistry()
	}
	return o
}
