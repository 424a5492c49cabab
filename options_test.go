package texture

import (
	"testing"

	"github.com/gogpu/texture/gpucore"
)

// TestBuildOptionsDefault tests the defaults applied with no options.
func TestBuildOptionsDefault(t *testing.T) {
	o := buildOptions(nil)

	if o.sampler != gpucore.DefaultSamplerDesc() {
		t.Errorf("sampler = %+v, want default", o.sampler)
	}
	if !o.register {
		t.Error("register = false, want true")
	}
	if o.registry != DefaultRegistry() {
		t.Error("registry is not the default registry")
	}
}

// TestBuildOptionsOrder tests that later options win.
func TestBuildOptionsOrder(t *testing.T) {
	reg := NewRegistry()
	o := buildOptions([]Option{
		WithWrap(WrapRepeat),
		WithSampler(gpucore.SamplerDesc{MinFilter: FilterNearest, Wrap: WrapMirroredRepeat}),
		WithMagFilter(FilterNearest),
		WithoutRegistration(),
		WithRegistry(reg),
		nil, // ignored
	})

	if o.sampler.MinFilter != FilterNearest || o.sampler.MagFilter != FilterNearest {
		t.Errorf("filters = %v/%v, want nearest/nearest", o.sampler.MinFilter, o.sampler.MagFilter)
	}
	if o.sampler.Wrap != WrapMirroredRepeat {
		t.Errorf("Wrap = %v, want mirrored-repeat", o.sampler.Wrap)
	}
	if !o.register || o.registry != reg {
		t.Error("WithRegistry after WithoutRegistration did not take effect")
	}
}

func TestWithRegistryNil(t *testing.T) {
	o := buildOptions([]Option{WithRegistry(nil)})
	if o.register || o.registry != nil {
		t.Errorf("WithRegistry(nil) = register %v, registry %v; want no registration", o.register, o.registry)
	}
}
