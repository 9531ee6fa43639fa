package skew_test

import (
	"fmt"

	"github.com/davidvella/heap/skew"
)

// ExampleHeap demonstrates basic insert and extract usage.
func ExampleHeap() {
	h := skew.New[int, string]()

	h.Insert(5, "write report")
	h.Insert(3, "review patch")
	h.Insert(8, "file expenses")
	h.Insert(1, "fix outage")

	for !h.IsEmpty() {
		e, _ := h.ExtractMinimum()
		fmt.Printf("%d: %s\n", e.Key(), e.Value())
	}

	// Output:
	// 1: fix outage
	// 3: review patch
	// 5: write report
	// 8: file expenses
}

// ExampleHeap_decreaseKey demonstrates raising an entry's priority through
// its handle.
func ExampleHeap_decreaseKey() {
	h := skew.New[int, string]()

	h.Insert(2, "first")
	task := h.Insert(9, "urgent after all")

	if err := h.DecreaseKey(task, 1); err != nil {
		fmt.Println("decrease failed:", err)
		return
	}

	e, _ := h.Minimum()
	fmt.Printf("%d: %s\n", e.Key(), e.Value())

	// Output:
	// 1: urgent after all
}

// ExampleHeap_union demonstrates merging two heaps in one operation.
func ExampleHeap_union() {
	a := skew.New[int, string]()
	b := skew.New[int, string]()

	a.Insert(1, "a1")
	a.Insert(3, "a3")
	b.Insert(2, "b2")
	b.Insert(4, "b4")

	if err := a.Union(b); err != nil {
		fmt.Println("union failed:", err)
		return
	}
	fmt.Println("b empty:", b.IsEmpty())

	for !a.IsEmpty() {
		e, _ := a.ExtractMinimum()
		fmt.Println(e.Key(), e.Value())
	}

	// Output:
	// b empty: true
	// 1 a1
	// 2 b2
	// 3 a3
	// 4 b4
}

// ExampleHeap_maxHeap demonstrates a custom comparator.
func ExampleHeap_maxHeap() {
	h := skew.NewFunc[int, string](func(a, b int) int {
		return b - a
	})

	h.Insert(10, "low")
	h.Insert(20, "high")
	h.Insert(15, "mid")

	e, _ := h.Minimum()
	fmt.Printf("%d: %s\n", e.Key(), e.Value())

	// Output:
	// 20: high
}
