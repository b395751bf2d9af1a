package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupportedRenderer reports a renderer that is registered but
// cannot produce output, e.g. because its backend is unavailable.
var ErrUnsupportedRenderer = errors.New("unsupported renderer")

// Registry stores renderers by name, providing discovery and
// duplication safeguards.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// DefaultRegistry returns a registry with the JSON, YAML and XML
// renderers registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(JSON())
	r.MustRegister(YAML())
	r.MustRegister(XML())
	return r
}

// Register adds a renderer by its Name(). Duplicate names return an
// error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time
// wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name. Unknown and unavailable renderers
// both fail with ErrUnsupportedRenderer at selection time.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("%w: renderer %q not found", ErrUnsupportedRenderer, name)
	}
	if !renderer.Available() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRenderer, name)
	}
	return renderer, nil
}

// List returns the sorted names of available renderers.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name, renderer := range r.renderers {
		if renderer.Available() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
