// Package itemlock serializes mutating operations per item. Operations
// on the same item run one at a time; operations on different items do
// not block each other.
package itemlock

import "sync"

// Registry hands out one mutex per item id. Entries are created on
// first use and kept for the life of the process; the population is
// bounded by the item catalog.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty lock registry.
func New() *Registry {
	return &Registry{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the exclusive critical section for the item and returns
// the function that releases it.
func (r *Registry) Lock(itemID string) (unlock func()) {
	r.mu.Lock()
	m, ok := r.locks[itemID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[itemID] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}
