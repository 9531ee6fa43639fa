package skew

import (
	"iter"

	"github.com/davidvella/heap"
)

// Iterator is a fail-fast walk over a heap's entries. It snapshots the
// heap's modification stamp at creation; any structural change after that
// point stops the walk with heap.ErrConcurrentModification. The order is a
// pre-order walk of the tree, not sorted order.
type Iterator[K, V any] struct {
	h     *Heap[K, V]
	stamp uint64
	next  *Entry[K, V]
	cur   *Entry[K, V]
	err   error
}

// Iter returns a fail-fast iterator positioned before the first entry.
func (h *Heap[K, V]) Iter() heap.Iterator[K, V] {
	return &Iterator[K, V]{h: h, stamp: h.stamp, next: h.root}
}

// Next advances the iterator. It returns false when the traversal is
// finished or a structural modification has been detected; check Err to
// tell the two apart.
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.stamp != it.h.stamp {
		it.err = heap.ErrConcurrentModification
		it.cur = nil
		return false
	}
	if it.next == nil {
		it.cur = nil
		return false
	}
	it.cur = it.next
	it.next = successor(it.next)
	return true
}

// Entry returns the entry the iterator is positioned on, or nil before the
// first Next call and after Next has returned false.
func (it *Iterator[K, V]) Entry() heap.Entry[K, V] {
	if it.cur == nil {
		return nil
	}
	return it.cur
}

// Err returns heap.ErrConcurrentModification if the walk was cut short by
// a structural change, and nil otherwise.
func (it *Iterator[K, V]) Err() error { return it.err }

// successor returns the entry after e in the walk: left child, else right
// child, else the right sibling of the nearest ancestor reached through a
// left link.
func successor[K, V any](e *Entry[K, V]) *Entry[K, V] {
	if e.left != nil {
		return e.left
	}
	if e.right != nil {
		return e.right
	}
	child := e
	for parent := e.parent; parent != nil; child, parent = parent, parent.parent {
		if parent.left == child && parent.right != nil {
			return parent.right
		}
	}
	return nil
}

// All returns the heap's entries as a range-over-func sequence in the same
// order as Iter. The sequence panics with heap.ErrConcurrentModification
// if the heap is structurally modified while it is being consumed; use
// Iter or heap.ForEach to receive that condition as an error instead.
func (h *Heap[K, V]) All() iter.Seq[heap.Entry[K, V]] {
	return func(yield func(heap.Entry[K, V]) bool) {
		it := &Iterator[K, V]{h: h, stamp: h.stamp, next: h.root}
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
		if it.err != nil {
			panic(it.err)
		}
	}
}
