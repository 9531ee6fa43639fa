// Package merge combines the sorted drains of several heaps into one
// globally sorted sequence using a tournament tree. Each leaf of the tree
// repeatedly extracts the minimum of one heap; internal nodes hold the
// loser of the contest between their children and the root holds the
// overall winner, so producing the next element costs O(log k) comparisons
// for k heaps instead of the k-1 a naive merge needs.
//
// The merge is destructive: every yielded entry has been extracted from
// its source heap, and the sources are empty once the sequence is
// exhausted. Exhausted sources are tracked with per-leaf flags, so no
// sentinel maximum key is required.
//
// Basic usage:
//
//	a := skew.New[int, string]()
//	b := skew.New[int, string]()
//	// ... insert into a and b ...
//
//	for e := range merge.Sorted(heap.Natural[int](), a, b) {
//	    fmt.Println(e.Key(), e.Value())
//	}
package merge
