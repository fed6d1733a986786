// Package history keeps the most recent lookups in memory.
package history

import "sync"

const DefaultCapacity = 50

// Ring is a fixed-capacity buffer that evicts its oldest entry once full.
// It is safe for concurrent use.
type Ring[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	size  int
}

// NewRing returns a ring holding at most capacity entries; capacity <= 0 means DefaultCapacity.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Push adds item as the newest entry.
func (r *Ring[T]) Push(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	if r.size < len(r.items) {
		r.size++
	}
}

// List returns up to limit entries, newest first. limit <= 0 returns everything.
func (r *Ring[T]) List(limit int) []T {
	return r.Filter(limit, nil)
}

// Filter returns up to limit entries matching keep, newest first. A nil keep matches all.
func (r *Ring[T]) Filter(limit int, keep func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > r.size {
		limit = r.size
	}

	out := make([]T, 0, limit)
	for i := 0; i < r.size && len(out) < limit; i++ {
		item := r.items[r.index(i)]
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many entries match keep. A nil keep matches all.
func (r *Ring[T]) Count(keep func(T) bool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if keep == nil {
		return r.size
	}

	n := 0
	for i := 0; i < r.size; i++ {
		if keep(r.items[r.index(i)]) {
			n++
		}
	}
	return n
}

func (r *Ring[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// index maps the i-th newest position to a slot; callers hold the lock.
func (r *Ring[T]) index(i int) int {
	n := len(r.items)
	return ((r.next-1-i)%n + n) % n
}
