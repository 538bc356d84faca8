package loader

import (
	"slices"
	"sync"
)

// Registry maps identifiers to entry points.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]EntryPoint
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]EntryPoint)}
}

// Register adds ep under id. It panics on an empty id, a nil entry point
// or a duplicate id, since all three are programming errors in init code.
func (r *Registry) Register(id string, ep EntryPoint) {
	if id == "" {
		panic("loader: Register with empty id")
	}
	if ep == nil {
		panic("loader: Register entry point is nil: " + id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[id]; dup {
		panic("loader: Register called twice for " + id)
	}
	r.entries[id] = ep
}

// Lookup returns the entry point for id.
func (r *Registry) Lookup(id string) (EntryPoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ep, ok := r.entries[id]
	return ep, ok
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

var defaultRegistry = NewRegistry()

// Register adds ep to the registry behind the system loader.
func Register(id string, ep EntryPoint) {
	defaultRegistry.Register(id, ep)
}

// registryLoader is a top-level loader backed by a registry.
type registryLoader struct {
	reg *Registry
}

// FromRegistry returns a top-level loader serving reg.
func FromRegistry(reg *Registry) Loader {
	return &registryLoader{reg: reg}
}

var systemLoader = FromRegistry(defaultRegistry)

// System returns the process top-level loader: every entry point linked
// into the binary.
func System() Loader {
	return systemLoader
}

func (l *registryLoader) Resolve(id string) (EntryPoint, error) {
	if ep, ok := l.reg.Lookup(id); ok {
		return ep, nil
	}
	return nil, notFound(id, nil)
}

func (l *registryLoader) Locations() []string { return nil }

func (l *registryLoader) Parent() Loader { return nil }
