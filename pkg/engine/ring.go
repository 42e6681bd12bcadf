package engine

import "sync"

// ring keeps the most recent len(items) values. It is safe for concurrent
// use so the debug server can read while the loop writes.
type ring[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	full  bool
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) push(v T) {
	r.mu.Lock()
	r.items[r.next] = v
	r.next++
	if r.next == len(r.items) {
		r.next, r.full = 0, true
	}
	r.mu.Unlock()
}

// values returns the stored values oldest first, or nil when empty.
func (r *ring[T]) values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.full {
		if r.next == 0 {
			return nil
		}
		return append([]T(nil), r.items[:r.next]...)
	}
	out := make([]T, 0, len(r.items))
	out = append(out, r.items[r.next:]...)
	return append(out, r.items[:r.next]...)
}

func (r *ring[T]) capacity() int { return len(r.items) }
