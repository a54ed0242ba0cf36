// Package spatial tracks which items currently participate in
// geometry and how to resolve each item's rectangle. The registry
// never holds rectangle snapshots; accessors are queried live so
// items in virtualized collections can move or unmount at any time.
package spatial

import (
	"sort"
	"sync"

	"rubberband/internal/geom"
)

// RectFunc resolves an item's current rectangle in the shared
// coordinate space. A false return means the item is not participating
// in geometry this frame (unmounted, scrolled out of a virtualized
// window) and must be excluded from the computation, not treated as an
// error.
type RectFunc func() (geom.Rect, bool)

// Registry maps item identifiers to rectangle accessors.
type Registry struct {
	mu        sync.RWMutex
	accessors map[string]RectFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		accessors: make(map[string]RectFunc),
	}
}

// Register adds an item. Registering an id that is already present
// replaces its accessor.
func (r *Registry) Register(id string, fn RectFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accessors[id] = fn
}

// Unregister removes an item. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.accessors, id)
}

// Contains reports whether the id is currently registered.
func (r *Registry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accessors[id]
	return ok
}

// Resolve returns the item's current rectangle. The second return is
// false when the id is unregistered, has a nil accessor, or the
// accessor reports the item as absent this frame.
func (r *Registry) Resolve(id string) (geom.Rect, bool) {
	r.mu.RLock()
	fn := r.accessors[id]
	r.mu.RUnlock()

	if fn == nil {
		return geom.Rect{}, false
	}
	return fn()
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.accessors))
	for id := range r.accessors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accessors)
}
