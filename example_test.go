package heap_test

import (
	"fmt"

	"github.com/davidvella/heap"
	"github.com/davidvella/heap/skew"
)

// Example demonstrates the shared scaffolding: views, equality and
// traversal over any heap implementation.
func Example() {
	a := skew.New[int, string]()
	a.Insert(2, "two")
	a.Insert(1, "one")

	b := skew.New[int, string]()
	b.Insert(1, "one")
	b.Insert(2, "two")

	fmt.Println("equal:", heap.Equal[int, string](a, b))
	fmt.Println("keys:", len(heap.Keys[int, string](a).Slice()))

	_ = heap.ForEach[int, string](a, func(e heap.Entry[int, string]) bool {
		return true
	})

	// Output:
	// equal: true
	// keys: 2
}
