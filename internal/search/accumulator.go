package search

import "sync"

// Accumulator holds the running, newest-first list of results a surface has
// accepted. Failed submissions never touch it, so a failure after a prior
// success cannot erase earlier result sets.
type Accumulator[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator[T any]() *Accumulator[T] {
	return &Accumulator[T]{}
}

// Prepend inserts a freshly accepted result list ahead of everything
// previously accumulated, preserving the new list's internal order.
func (a *Accumulator[T]) Prepend(items []T) {
	if len(items) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	merged := make([]T, 0, len(items)+len(a.items))
	merged = append(merged, items...)
	merged = append(merged, a.items...)
	a.items = merged
}

// Items returns a copy of the accumulated list, newest first.
func (a *Accumulator[T]) Items() []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// Len returns the number of accumulated items.
func (a *Accumulator[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}
