package texture

import (
	"fmt"
	"slices"
	"sync"
)

// RegistryStats contains texture usage statistics.
type RegistryStats struct {
	// Textures is the number of live registered textures.
	Textures int

	// Bytes is the device memory held by those textures.
	Bytes uint64
}

// String returns a human-readable string of registry stats.
func (s RegistryStats) String() string {
	return fmt.Sprintf("Registry[%d textures, %.1f KB]", s.Textures, float64(s.Bytes)/1024)
}

// Registry tracks live textures by name.
//
// Create and Load register new textures here (in DefaultRegistry unless
// told otherwise) and Delete removes them. Names are unique within a
// registry for as long as the texture holding them is live.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	// textures maps names to live textures. A nil value marks a name
	// reserved by an in-flight Create.
	textures map[string]*Texture

	usedBytes uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		textures: make(map[string]*Texture),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when no
// WithRegistry or WithoutRegistration option is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Get returns the live texture registered under name.
func (r *Registry) Get(name string) (*Texture, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t := r.textures[name]
	return t, t != nil
}

// Len returns the number of live registered textures.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, t := range r.textures {
		if t != nil {
			n++
		}
	}
	return n
}

// Names returns the names of live registered textures in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.textures))
	for name, t := range r.textures {
		if t != nil {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Stats returns current usage statistics.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := RegistryStats{Bytes: r.usedBytes}
	for _, t := range r.textures {
		if t != nil {
			s.Textures++
		}
	}
	return s
}

// ReleaseAll deletes every registered texture.
// Like Delete, it must run on the goroutine that owns the device.
func (r *Registry) ReleaseAll() {
	r.mu.RLock()
	live := make([]*Texture, 0, len(r.textures))
	for _, t := range r.textures {
		if t != nil {
			live = append(live, t)
		}
	}
	r.mu.RUnlock()

	// Delete calls back into remove, so the lock must not be held here.
	for _, t := range live {
		t.Delete()
	}
}

// reserve claims name for an in-flight Create.
func (r *Registry) reserve(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.textures[name]; taken {
		return fmt.Errorf("%w: %q", ErrNameInUse, name)
	}
	r.textures[name] = nil
	return nil
}

// unreserve drops a reservation after a failed Create.
func (r *Registry) unreserve(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.textures[name]; ok && t == nil {
		delete(r.textures, name)
	}
}

// fill completes a reservation with the created texture.
func (r *Registry) fill(t *Texture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.registry = r
	r.textures[t.name] = t
	r.usedBytes += t.SizeBytes()
}

// remove unregisters t. Called from Texture.Delete.
func (r *Registry) remove(t *Texture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.textures[t.name] != t {
		return
	}
	delete(r.textures, t.name)
	r.usedBytes -= t.SizeBytes()
}
