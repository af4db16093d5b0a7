package factory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is an extensible factory: instead of a fixed switch, vehicle
// constructors are registered under a tag at runtime. This is how the
// factory pattern usually survives contact with real codebases, where the
// set of products is open.
//
// Thread-safe for concurrent registration and creation.
//
// Example:
//
//	reg := factory.NewRegistry()
//	reg.Register("bus", func() factory.Vehicle { return Bus{} })
//	v, err := reg.Create("bus")
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]func() Vehicle
}

// NewRegistry creates a Registry pre-seeded with the built-in vehicles
// (car, truck, motorcycle), matching the behavior of New.
func NewRegistry() *Registry {
	r := &Registry{
		ctors: make(map[string]func() Vehicle),
	}
	r.Register("car", func() Vehicle { return Car{} })
	r.Register("truck", func() Vehicle { return Truck{} })
	r.Register("motorcycle", func() Vehicle { return Motorcycle{} })
	return r
}

// Register associates a constructor with a tag, replacing any previous
// registration for the same tag. Tags are normalized to lower case.
func (r *Registry) Register(kind string, ctor func() Vehicle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctors[strings.ToLower(kind)] = ctor
}

// Create builds a vehicle for the given tag.
//
// Returns ErrUnknownVehicle (wrapped with the tag) when nothing is
// registered under it.
func (r *Registry) Create(kind string) (Vehicle, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[strings.ToLower(kind)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownVehicle)
	}
	return ctor(), nil
}

// Kinds returns all registered tags in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
