package manifest

import (
	"fmt"
	"maps"
	"slices"
)

// Registry maps the handler names used in a manifest to handler values.
type Registry[H, D any] struct {
	handlers     map[string]H
	dataHandlers map[string]D
}

// NewRegistry creates an empty registry.
func NewRegistry[H, D any]() *Registry[H, D] {
	return &Registry[H, D]{
		handlers:     make(map[string]H),
		dataHandlers: make(map[string]D),
	}
}

// Handler registers h under name. Registering a name twice panics.
func (r *Registry[H, D]) Handler(name string, h H) *Registry[H, D] {
	if _, ok := r.handlers[name]; ok {
		panic(fmt.Errorf("%w: handler %q", ErrDuplicateName, name))
	}
	r.handlers[name] = h
	return r
}

// DataHandler registers d under name. Registering a name twice panics.
func (r *Registry[H, D]) DataHandler(name string, d D) *Registry[H, D] {
	if _, ok := r.dataHandlers[name]; ok {
		panic(fmt.Errorf("%w: data handler %q", ErrDuplicateName, name))
	}
	r.dataHandlers[name] = d
	return r
}

// Names returns the registered handler names in sorted order.
func (r *Registry[H, D]) Names() []string {
	return slices.Sorted(maps.Keys(r.handlers))
}

func (r *Registry[H, D]) handler(name string) (H, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry[H, D]) dataHandler(name string) (D, bool) {
	d, ok := r.dataHandlers[name]
	return d, ok
}
