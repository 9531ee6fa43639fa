// Package heapio flattens heaps to and from a binary stream. The saved
// form is the logical key/value multiset only: a magic header, a format
// version, the entry count, and one length-prefixed key/value pair per
// entry in iteration order. Tree shape and entry identity are not
// preserved; Read rebuilds the heap by reinserting every pair into a
// caller-supplied heap, which also provides the key ordering (Go functions
// cannot travel with the stream).
//
// Keys and values pass through a pluggable Serializer; GobSerializer is
// the default for types encoding/gob understands.
//
// Basic usage:
//
//	var buf bytes.Buffer
//	ints := heapio.GobSerializer[int]{}
//
//	_, err := heapio.Write(&buf, h, ints, ints)
//	// ...
//	restored := skew.New[int, int]()
//	err = heapio.Read(&buf, restored, ints, ints)
//
// Writing is fail-fast: a structural modification of the heap observed
// while the stream is being produced aborts the write with an error
// wrapping heap.ErrConcurrentModification.
package heapio
