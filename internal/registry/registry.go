// Package registry provides a generic thread-safe name-to-value registry.
// The store uses one for MongoDB collection handles and another for live
// player sessions.
package registry

import "sync"

// Registry maps string names to values of type T. All methods are safe for
// concurrent use.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register stores value under name, replacing any previous entry.
func (r *Registry[T]) Register(name string, value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = value
}

// Get returns the value registered under name.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[name]
	return v, ok
}

// MustGet returns the value registered under name, or the zero value when
// absent. Callers that need to distinguish use Get.
func (r *Registry[T]) MustGet(name string) T {
	v, _ := r.Get(name)
	return v
}

// GetOrCreate returns the existing value or stores and returns the result
// of create. The create function runs under the write lock, at most once
// per name.
func (r *Registry[T]) GetOrCreate(name string, create func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.items[name]; ok {
		return v
	}
	v := create()
	r.items[name] = v
	return v
}

// Remove deletes the entry for name. Removing an absent name is a no-op.
func (r *Registry[T]) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, name)
}

// Names returns a snapshot of all registered names.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Clear removes all entries.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}
