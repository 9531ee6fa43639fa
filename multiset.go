package heap

import "hash/maphash"

var hashSeed = maphash.MakeSeed()

// Equal reports whether two heaps hold equal entry multisets: every entry
// of a must pair off with exactly one entry of b carrying the same key and
// value, and vice versa. Shape, implementation and iteration order play no
// part in the comparison.
//
// Duplicate keys and values are supported, which is why this is a bijection
// search rather than a set comparison; it runs in O(n^2) time.
func Equal[K, V comparable](a, b Heap[K, V]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Len() != b.Len() {
		return false
	}

	type pair struct {
		key   K
		value V
	}
	remaining := make([]pair, 0, b.Len())
	for e := range b.All() {
		remaining = append(remaining, pair{e.Key(), e.Value()})
	}

	// Pull entries off a one at a time and strike the first match from the
	// copy of b. Both must empty out together.
	for e := range a.All() {
		found := false
		for i, p := range remaining {
			if p.key == e.Key() && p.value == e.Value() {
				remaining[i] = remaining[len(remaining)-1]
				remaining = remaining[:len(remaining)-1]
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(remaining) == 0
}

// Sum returns an order-independent hash of h's entries: the XOR over all
// entries of the key hash XORed with the value hash. Heaps that compare
// Equal produce the same sum. The seed is fixed per process, so sums are
// not stable across runs.
func Sum[K, V comparable](h Heap[K, V]) uint64 {
	var sum uint64
	for e := range h.All() {
		sum ^= maphash.Comparable(hashSeed, e.Key()) ^ maphash.Comparable(hashSeed, e.Value())
	}
	return sum
}
