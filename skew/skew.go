package skew

import (
	"cmp"

	"github.com/davidvella/heap"
)

// Heap is a skew heap. The zero value is not usable; construct heaps with
// New or NewFunc.
type Heap[K, V any] struct {
	root    *Entry[K, V]
	size    int
	compare heap.Compare[K]

	// stamp counts structural modifications and backs fail-fast iteration.
	stamp uint64

	// ref is the ownership token shared with every entry this heap has
	// created. See ownerRef.
	ref *ownerRef[K, V]
}

var _ heap.Heap[int, any] = (*Heap[int, any])(nil)

// ownerRef ties entries back to the heap that currently owns them. All
// entries created by one heap share a single cell, so Union can hand an
// entire tree to another heap by repointing one pointer instead of walking
// the tree.
type ownerRef[K, V any] struct {
	heap *Heap[K, V]
}

// New creates an empty skew heap ordered by the keys' natural ordering.
func New[K cmp.Ordered, V any]() *Heap[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty skew heap ordered by the given comparison
// function. The function must describe a total order over all keys the
// heap will see; it is first consulted when the second entry arrives.
func NewFunc[K, V any](compare heap.Compare[K]) *Heap[K, V] {
	h := &Heap[K, V]{compare: compare}
	h.ref = &ownerRef[K, V]{heap: h}
	return h
}

// Compare returns the key ordering this heap was built with.
func (h *Heap[K, V]) Compare() heap.Compare[K] { return h.compare }

// Len returns the number of entries in the heap.
func (h *Heap[K, V]) Len() int { return h.size }

// IsEmpty reports whether the heap has no entries.
func (h *Heap[K, V]) IsEmpty() bool { return h.size == 0 }

// Insert adds a key/value pair and returns the entry created for it. The
// entry is held by this heap until it is extracted, deleted, or moved to
// another heap by Union.
func (h *Heap[K, V]) Insert(key K, value V) heap.Entry[K, V] {
	e := &Entry[K, V]{key: key, value: value, ref: h.ref}
	h.root = h.link(h.root, e)
	h.size++
	h.stamp++
	return e
}

// Minimum returns the entry with the least key without removing it.
func (h *Heap[K, V]) Minimum() (heap.Entry[K, V], error) {
	if h.size == 0 {
		return nil, heap.ErrEmptyHeap
	}
	return h.root, nil
}

// ExtractMinimum removes and returns the entry with the least key. The
// returned entry is no longer held by the heap.
func (h *Heap[K, V]) ExtractMinimum() (heap.Entry[K, V], error) {
	if h.size == 0 {
		return nil, heap.ErrEmptyHeap
	}

	min := h.root
	h.root = h.link(min.left, min.right)

	// link fixes parent pointers below the merge point but not on the
	// returned root itself; that is this caller's job.
	if h.root != nil {
		h.root.parent = nil
	}

	min.left = nil
	min.right = nil
	min.ref = nil

	h.size--
	h.stamp++
	return min, nil
}

// DecreaseKey lowers the key of an entry held by this heap. A key equal to
// the current one is accepted. When the entry is not the root it is cut
// from the tree, the merge of its children is spliced into its old slot,
// and the entry is merged back with the root under its new key.
func (h *Heap[K, V]) DecreaseKey(e heap.Entry[K, V], key K) error {
	entry, err := h.held(e)
	if err != nil {
		return err
	}
	if h.compare(key, entry.key) > 0 {
		return heap.ErrKeyIncrease
	}

	if entry == h.root {
		// Already minimal; the key only moved down.
		entry.key = key
		h.stamp++
		return nil
	}

	h.cut(entry)
	entry.key = key
	h.root = h.link(h.root, entry)
	h.stamp++
	return nil
}

// Delete removes an arbitrary entry held by this heap. Deleting the root
// is an ExtractMinimum; any other entry is cut and replaced by the merge
// of its children.
func (h *Heap[K, V]) Delete(e heap.Entry[K, V]) error {
	entry, err := h.held(e)
	if err != nil {
		return err
	}

	if entry == h.root {
		_, err := h.ExtractMinimum()
		return err
	}

	h.cut(entry)
	entry.ref = nil
	h.size--
	h.stamp++
	return nil
}

// Union moves every entry of other into this heap. Afterwards this heap
// holds all entries of both, and other is empty but remains usable. The
// donor's entries change owner in O(1) by repointing the shared ownership
// token. Other is cleared even if the key comparison panics, so it is
// never left in a half-merged state.
func (h *Heap[K, V]) Union(other heap.Heap[K, V]) error {
	if other == nil {
		return heap.ErrNilHeap
	}
	if other == heap.Heap[K, V](h) {
		return heap.ErrSelfUnion
	}
	that, ok := other.(*Heap[K, V])
	if !ok {
		return heap.ErrTypeMismatch
	}
	if that == nil {
		return heap.ErrNilHeap
	}
	if that.IsEmpty() {
		return nil
	}

	defer that.Clear()

	h.root = h.link(h.root, that.root)

	// Every entry created by that shares its token; one store transfers
	// ownership of the whole tree. The donor gets a fresh token so its
	// future entries are distinguishable from the ones it gave away.
	that.ref.heap = h
	that.ref = &ownerRef[K, V]{heap: that}

	h.size += that.size
	h.stamp++
	return nil
}

// Clear removes all entries. Entries created before the call are no longer
// held by this heap.
func (h *Heap[K, V]) Clear() {
	h.root = nil
	h.ref.heap = nil
	h.ref = &ownerRef[K, V]{heap: h}
	h.size = 0
	h.stamp++
}

// Holds reports whether this exact entry object is currently owned by this
// heap. It is an identity check through the ownership token, not an
// equality search; see heap.Contains for the latter.
func (h *Heap[K, V]) Holds(e heap.Entry[K, V]) bool {
	entry, ok := e.(*Entry[K, V])
	if !ok || entry == nil {
		return false
	}
	return entry.ref != nil && entry.ref.heap == h
}

// held validates an entry argument for DecreaseKey and Delete.
func (h *Heap[K, V]) held(e heap.Entry[K, V]) (*Entry[K, V], error) {
	if e == nil {
		return nil, heap.ErrNilEntry
	}
	entry, ok := e.(*Entry[K, V])
	if !ok {
		return nil, heap.ErrNotHeld
	}
	if entry == nil {
		return nil, heap.ErrNilEntry
	}
	if entry.ref == nil || entry.ref.heap != h {
		return nil, heap.ErrNotHeld
	}
	return entry, nil
}

// cut detaches a non-root entry from the tree, splicing the merge of its
// children into its old slot. The entry leaves with all links cleared; the
// caller decides whether it is discarded or merged back.
func (h *Heap[K, V]) cut(entry *Entry[K, V]) {
	parent := entry.parent
	left, right := entry.left, entry.right
	entry.parent = nil
	entry.left = nil
	entry.right = nil

	if left == nil && right == nil {
		if parent.left == entry {
			parent.left = nil
		} else {
			parent.right = nil
		}
		return
	}

	if left != nil {
		left.parent = nil
	}
	if right != nil {
		right.parent = nil
	}

	replacement := h.link(left, right)
	replacement.parent = parent
	if parent.left == entry {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
}

// link merges two heap-ordered subtrees and returns the root of the
// result. It is the only operation that attaches or detaches children, and
// it never changes sizes or the modification stamp.
//
// The textbook formulation is recursive along right spines, which can
// reach O(n) depth on a degenerate tree. It is unrolled here with an
// explicit chain of winners so native call-stack use stays constant
// regardless of tree shape; the amortized bound is unchanged.
func (h *Heap[K, V]) link(a, b *Entry[K, V]) *Entry[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	// Descend: each round the smaller-keyed root wins, swaps its
	// children, and sends its old right subtree down to be merged with
	// the loser.
	chain := make([]*Entry[K, V], 0, 32)
	for a != nil && b != nil {
		smaller, bigger := a, b
		if h.compare(a.key, b.key) >= 0 {
			smaller, bigger = b, a
		}
		next := smaller.right
		smaller.right = smaller.left
		chain = append(chain, smaller)
		a, b = next, bigger
	}
	tail := a
	if tail == nil {
		tail = b
	}

	// Rebuild: each winner adopts the merged remainder as its new left
	// child. tail is never nil here since the loop above only exits with
	// the carried loser still in hand.
	for i := len(chain) - 1; i >= 0; i-- {
		smaller := chain[i]
		smaller.left = tail
		tail.parent = smaller
		tail = smaller
	}
	return tail
}
