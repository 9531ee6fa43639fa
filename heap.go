package heap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Compare is the ordering contract for heap keys. It returns a negative
// number when a orders before b, zero when the two are equivalent, and a
// positive number when a orders after b.
type Compare[K any] func(a, b K) int

// Natural returns the natural ordering for any ordered key type.
func Natural[K cmp.Ordered]() Compare[K] {
	return cmp.Compare[K]
}

// Entry is a single key/value pair held by a heap. Entries act as handles:
// the value returned by Insert is the value later passed to DecreaseKey and
// Delete. An entry's key is managed by its heap and can only change through
// DecreaseKey; its value may be replaced freely.
type Entry[K, V any] interface {
	Key() K
	Value() V

	// SetValue replaces the entry's value and returns the previous one.
	SetValue(value V) V
}

// Iterator walks a heap's entries in structural order, which is generally
// not sorted order. Iterators are fail-fast: a structural modification of
// the heap after the iterator was created stops the walk and is reported by
// Err. Iterators do not support removal.
type Iterator[K, V any] interface {
	// Next advances to the next entry. It returns false when the walk is
	// finished or a structural modification was detected; check Err to
	// tell the two apart.
	Next() bool

	// Entry returns the entry the iterator is positioned on, or nil before
	// the first Next call and after Next has returned false.
	Entry() Entry[K, V]

	// Err returns ErrConcurrentModification if the walk was cut short by a
	// structural change, and nil otherwise.
	Err() error
}

// Heap is the contract shared by every implementation in this module. All
// implementations order entries by a total order on keys and keep the
// minimum at the root; none are synchronized.
type Heap[K, V any] interface {
	// Compare returns the key ordering this heap was built with.
	Compare() Compare[K]

	// Insert adds a key/value pair and returns the entry created for it.
	Insert(key K, value V) Entry[K, V]

	// Minimum returns the entry with the least key without removing it.
	// It fails with ErrEmptyHeap when the heap has no entries.
	Minimum() (Entry[K, V], error)

	// ExtractMinimum removes and returns the entry with the least key.
	// It fails with ErrEmptyHeap when the heap has no entries.
	ExtractMinimum() (Entry[K, V], error)

	// DecreaseKey lowers the key of an entry held by this heap. The new
	// key must not order after the current one; an equal key is accepted
	// and leaves the structure untouched apart from the entry itself.
	DecreaseKey(e Entry[K, V], key K) error

	// Delete removes an arbitrary entry held by this heap.
	Delete(e Entry[K, V]) error

	// Union moves every entry of other into this heap and leaves other
	// empty but usable. Only heaps of the same implementation can be
	// unioned; mixing fails with ErrTypeMismatch.
	Union(other Heap[K, V]) error

	// Holds reports whether this exact entry object is currently owned by
	// this heap. It runs in O(1) and is unrelated to key/value equality.
	Holds(e Entry[K, V]) bool

	// Clear removes all entries. Previously returned entries are no
	// longer held afterwards.
	Clear()

	Len() int
	IsEmpty() bool

	// Iter returns a fail-fast iterator over the entries.
	Iter() Iterator[K, V]

	// All returns the entries as a range-over-func sequence built on Iter.
	// Because a range body cannot receive an error, the sequence panics
	// with ErrConcurrentModification if the heap is structurally modified
	// while being consumed; use ForEach or Iter to handle that case as an
	// error instead.
	All() iter.Seq[Entry[K, V]]
}

// InsertAll copies every key/value pair of src into dst. The source heap is
// read through its entry sequence and left unchanged; dst and src may be
// different implementations. Inserting a heap into itself fails with
// ErrSelfUnion.
func InsertAll[K, V any](dst, src Heap[K, V]) error {
	if dst == nil || src == nil {
		return ErrNilHeap
	}
	if dst == src {
		return ErrSelfUnion
	}
	if src.IsEmpty() {
		return nil
	}
	for e := range src.All() {
		dst.Insert(e.Key(), e.Value())
	}
	return nil
}

// ForEach applies fn to every entry of h in iteration order, stopping early
// if fn returns false. If fn structurally modifies h the traversal stops
// and ErrConcurrentModification is returned.
func ForEach[K, V any](h Heap[K, V], fn func(e Entry[K, V]) bool) error {
	it := h.Iter()
	for it.Next() {
		if !fn(it.Entry()) {
			return nil
		}
	}
	return it.Err()
}

// Contains reports whether h contains an entry with the same key and value
// as e. This is an O(n) equality search over the whole heap; use Heap.Holds
// for the O(1) identity check.
func Contains[K, V comparable](h Heap[K, V], e Entry[K, V]) bool {
	if h == nil || e == nil {
		return false
	}
	key, value := e.Key(), e.Value()
	for other := range h.All() {
		if other.Key() == key && other.Value() == value {
			return true
		}
	}
	return false
}

// String renders h as "heap(size) [k->v, ...]" in iteration order.
func String[K, V any](h Heap[K, V]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "heap(%d) [", h.Len())
	first := true
	for e := range h.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v->%v", e.Key(), e.Value())
	}
	b.WriteString("]")
	return b.String()
}
