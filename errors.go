package heap

import "errors"

// Common errors returned by heap operations and collection views.
var (
	// ErrEmptyHeap is returned when the minimum is requested from a heap
	// with no entries.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrNilEntry is returned when a required entry argument is nil.
	ErrNilEntry = errors.New("heap: nil entry")

	// ErrNilHeap is returned when a required heap argument is nil.
	ErrNilHeap = errors.New("heap: nil heap")

	// ErrNotHeld is returned when an operation is given an entry that is
	// not currently owned by the heap it was addressed to.
	ErrNotHeld = errors.New("heap: entry is not held by this heap")

	// ErrKeyIncrease is returned when DecreaseKey is asked to move a key
	// upward. A key equal to the current one is permitted.
	ErrKeyIncrease = errors.New("heap: new key is greater than current key")

	// ErrSelfUnion is returned when a heap is unioned with itself.
	ErrSelfUnion = errors.New("heap: cannot union a heap with itself")

	// ErrTypeMismatch is returned when two heaps of different structural
	// families are unioned. Use InsertAll to copy entries across families.
	ErrTypeMismatch = errors.New("heap: cannot union heaps of different implementations")

	// ErrConcurrentModification is reported when an iterator observes a
	// structural change made after it was created.
	ErrConcurrentModification = errors.New("heap: heap modified during iteration")

	// ErrReadOnly is returned by mutating methods of collection views.
	ErrReadOnly = errors.New("heap: collection view is read-only")
)
