// Package listener provides the observer registry shared by every
// observable state holder (budget, currency, theme, transaction store).
package listener

import "sync"

// Registry fans a value out to named listeners in registration order.
// Add is idempotent per id and Remove tolerates unknown ids. Notify
// snapshots the listener list before invoking, so a callback may register
// or deregister listeners without corrupting the iteration.
type Registry[T any] struct {
	mu    sync.Mutex
	ids   []string
	funcs map[string]func(T)
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		funcs: make(map[string]func(T)),
	}
}

// Add registers fn under id. Registering an id twice is a no-op; the
// original function and its position in the order are kept.
func (r *Registry[T]) Add(id string, fn func(T)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[id]; exists {
		return
	}
	r.funcs[id] = fn
	r.ids = append(r.ids, id)
}

// Remove deregisters id. Removing an unknown id is a no-op.
func (r *Registry[T]) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[id]; !exists {
		return
	}
	delete(r.funcs, id)
	for i, registered := range r.ids {
		if registered == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
}

// Notify invokes every registered listener with v, in registration order.
// The list is snapshotted under the lock and the calls happen outside it.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	snapshot := make([]func(T), 0, len(r.ids))
	for _, id := range r.ids {
		snapshot = append(snapshot, r.funcs[id])
	}
	r.mu.Unlock()

	for _, fn := range snapshot {
		fn(v)
	}
}

// Len returns the number of registered listeners.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}
