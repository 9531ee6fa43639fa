package heapio_test

import (
	"bytes"
	"fmt"

	"github.com/davidvella/heap/heapio"
	"github.com/davidvella/heap/skew"
)

// Example demonstrates flattening a heap and rebuilding it.
func Example() {
	h := skew.New[int, string]()
	h.Insert(2, "second")
	h.Insert(1, "first")

	codec := heapio.GobSerializer[int]{}
	values := heapio.GobSerializer[string]{}

	var buf bytes.Buffer
	if _, err := heapio.Write(&buf, h, codec, values); err != nil {
		fmt.Println("write failed:", err)
		return
	}

	restored := skew.New[int, string]()
	if err := heapio.Read(&buf, restored, codec, values); err != nil {
		fmt.Println("read failed:", err)
		return
	}

	for !restored.IsEmpty() {
		e, _ := restored.ExtractMinimum()
		fmt.Println(e.Key(), e.Value())
	}

	// Output:
	// 1 first
	// 2 second
}
