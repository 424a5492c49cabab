package gpucore

// Device abstracts the graphics device a texture lives on.
//
// Implementations translate the ID-based calls below to a concrete backend
// (see backend/native for gogpu/wgpu HAL). A Device is bound to the
// goroutine that owns the graphics context: callers must not issue device
// calls from several goroutines at once.
//
// Resource lifecycle:
//   - Resources are created via Create* methods
//   - Resources must be explicitly destroyed via Destroy* methods
//   - Destroying a resource while in use is undefined behavior
//   - IDs become invalid after destruction and must not be reused
type Device interface {
	// === Texture Management ===

	// CreateTexture allocates an uninitialized 2D texture.
	CreateTexture(desc *TextureDesc) (TextureID, error)

	// WriteTexture uploads data as the full image content of the texture.
	// The data must match the texture format and dimensions. It is not
	// retained after WriteTexture returns.
	WriteTexture(id TextureID, data []byte) error

	// DestroyTexture releases a GPU texture.
	DestroyTexture(id TextureID)

	// === Sampler Management ===

	// CreateSampler creates a sampler with the given filtering and wrapping.
	CreateSampler(desc *SamplerDesc) (SamplerID, error)

	// DestroySampler releases a sampler.
	DestroySampler(id SamplerID)

	// === Binding ===

	// ActiveTexture selects the texture unit subsequent BindTexture calls
	// target. The active unit is shared, mutable device state.
	ActiveTexture(unit TextureUnit)

	// BindTexture binds a texture and its sampler to the active unit.
	BindTexture(texture TextureID, sampler SamplerID)
}
