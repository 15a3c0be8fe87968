// Package cache is a process-local snapshot cache keyed by resource kind
// and owner identity.
//
// The contract is deliberately explicit: a mutation path calls Invalidate,
// and the next GetOrFetch for that key runs the fetch again. There is no
// TTL and no background refresh; staleness is only ever declared by the
// owner of the mutation.
package cache

import (
	"context"
	"sync"
)

// Key identifies one cached snapshot.
type Key struct {
	Resource string // e.g. "todos"
	Owner    string // owning user id
}

// Cache stores one value per key. Concurrent use is safe, but note that
// two overlapping GetOrFetch calls for the same stale key may both run
// the fetch; the last one to complete wins.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[Key]T
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[Key]T)}
}

// GetOrFetch returns the cached value for key, running fetch to populate
// it when absent. A fetch error is returned as-is and nothing is cached.
func (c *Cache[T]) GetOrFetch(ctx context.Context, key Key, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	// Fetch outside the lock so a slow network call doesn't stall
	// readers of other keys.
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v, nil
}

// Peek returns the cached value without fetching.
func (c *Cache[T]) Peek(key Key) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Invalidate marks the key stale. The next GetOrFetch refetches.
func (c *Cache[T]) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every entry. Called when the user identity changes.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]T)
}
