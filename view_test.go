package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/heap"
)

func TestKeysView(t *testing.T) {
	h := build([2]int{1, 10}, [2]int{2, 20}, [2]int{3, 30})
	keys := heap.Keys[int, int](h)

	assert.Equal(t, 3, keys.Len())
	assert.False(t, keys.IsEmpty())
	assert.ElementsMatch(t, []int{1, 2, 3}, keys.Slice())
	assert.True(t, heap.Includes(keys, 2))
	assert.False(t, heap.Includes(keys, 9))
}

func TestValuesView(t *testing.T) {
	h := build([2]int{1, 10}, [2]int{2, 20})
	values := heap.Values[int, int](h)

	assert.Equal(t, 2, values.Len())
	assert.ElementsMatch(t, []int{10, 20}, values.Slice())
	assert.True(t, heap.Includes(values, 10))
}

func TestEntriesView(t *testing.T) {
	h := build([2]int{1, 10}, [2]int{2, 20})
	entries := heap.Entries[int, int](h)

	assert.Equal(t, 2, entries.Len())
	assert.Len(t, entries.Slice(), 2)
}

func TestViewIsLive(t *testing.T) {
	h := build()
	keys := heap.Keys[int, int](h)

	assert.True(t, keys.IsEmpty())

	// Views are stateless projections; they track the heap.
	h.Insert(4, 40)
	assert.Equal(t, 1, keys.Len())
	assert.Equal(t, []int{4}, keys.Slice())
}

func TestViewRejectsMutation(t *testing.T) {
	h := build([2]int{1, 10})
	keys := heap.Keys[int, int](h)

	require.ErrorIs(t, keys.Add(2), heap.ErrReadOnly)
	require.ErrorIs(t, keys.Remove(1), heap.ErrReadOnly)
	require.ErrorIs(t, keys.Clear(), heap.ErrReadOnly)

	// The heap is untouched.
	assert.Equal(t, 1, h.Len())
}

func TestEqualViews(t *testing.T) {
	a := build([2]int{1, 10}, [2]int{2, 20}, [2]int{2, 20})
	b := build([2]int{2, 20}, [2]int{2, 20}, [2]int{1, 10})
	c := build([2]int{1, 10}, [2]int{2, 20}, [2]int{2, 99})

	assert.True(t, heap.EqualViews(heap.Keys[int, int](a), heap.Keys[int, int](b)))
	assert.True(t, heap.EqualViews(heap.Values[int, int](a), heap.Values[int, int](b)))
	assert.False(t, heap.EqualViews(heap.Values[int, int](a), heap.Values[int, int](c)))

	short := build([2]int{1, 10})
	assert.False(t, heap.EqualViews(heap.Keys[int, int](a), heap.Keys[int, int](short)))
}
