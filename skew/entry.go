package skew

// Entry is a node in a skew heap. Entries are created by Insert and act as
// handles for DecreaseKey and Delete. The structural links belong to the
// owning heap; only the value may be mutated directly.
type Entry[K, V any] struct {
	key   K
	value V

	parent *Entry[K, V]
	left   *Entry[K, V]
	right  *Entry[K, V]

	// ref points at the ownership token of the heap that currently owns
	// this entry, or is nil once the entry has been extracted or deleted.
	ref *ownerRef[K, V]
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value.
func (e *Entry[K, V]) Value() V { return e.value }

// SetValue replaces the entry's value and returns the previous one. Values
// do not participate in ordering, so this never moves the entry.
func (e *Entry[K, V]) SetValue(value V) V {
	prev := e.value
	e.value = value
	return prev
}
