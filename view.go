package heap

import "iter"

// View is a read-only, lazily evaluated projection over a heap. A view
// carries no state of its own beyond a reference to the heap that backs it,
// so it always reflects the heap's current contents. Mutating methods exist
// only to satisfy collection-shaped call sites and always fail with
// ErrReadOnly.
type View[E any] struct {
	length func() int
	all    iter.Seq[E]
}

// Len returns the number of elements in the view, which is always the size
// of the backing heap.
func (v View[E]) Len() int { return v.length() }

// IsEmpty reports whether the backing heap has no entries.
func (v View[E]) IsEmpty() bool { return v.length() == 0 }

// All returns the elements as a range-over-func sequence. The sequence is
// fail-fast in the same way as Heap.All.
func (v View[E]) All() iter.Seq[E] { return v.all }

// Slice materializes the view into a fresh slice in iteration order.
func (v View[E]) Slice() []E {
	out := make([]E, 0, v.length())
	for e := range v.all {
		out = append(out, e)
	}
	return out
}

// Add always fails with ErrReadOnly.
func (v View[E]) Add(E) error { return ErrReadOnly }

// Remove always fails with ErrReadOnly.
func (v View[E]) Remove(E) error { return ErrReadOnly }

// Clear always fails with ErrReadOnly.
func (v View[E]) Clear() error { return ErrReadOnly }

// Keys returns a read-only view over the keys of h.
func Keys[K, V any](h Heap[K, V]) View[K] {
	return View[K]{
		length: h.Len,
		all: func(yield func(K) bool) {
			for e := range h.All() {
				if !yield(e.Key()) {
					return
				}
			}
		},
	}
}

// Values returns a read-only view over the values of h.
func Values[K, V any](h Heap[K, V]) View[V] {
	return View[V]{
		length: h.Len,
		all: func(yield func(V) bool) {
			for e := range h.All() {
				if !yield(e.Value()) {
					return
				}
			}
		},
	}
}

// Entries returns a read-only view over the entries of h.
func Entries[K, V any](h Heap[K, V]) View[Entry[K, V]] {
	return View[Entry[K, V]]{
		length: h.Len,
		all:    h.All(),
	}
}

// Includes reports whether the view contains an element equal to elem. It
// is an O(n) scan.
func Includes[E comparable](v View[E], elem E) bool {
	for e := range v.all {
		if e == elem {
			return true
		}
	}
	return false
}

// EqualViews reports whether two views hold equal element multisets, using
// the same O(n^2) bijection search as Equal.
func EqualViews[E comparable](a, b View[E]) bool {
	if a.Len() != b.Len() {
		return false
	}
	remaining := make([]E, 0, b.Len())
	for e := range b.all {
		remaining = append(remaining, e)
	}
	for e := range a.all {
		found := false
		for i, other := range remaining {
			if e == other {
				remaining[i] = remaining[len(remaining)-1]
				remaining = remaining[:len(remaining)-1]
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(remaining) == 0
}
