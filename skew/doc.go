// Package skew implements a skew heap: a self-adjusting, mergeable
// priority queue built on a pointer-linked binary tree with no structural
// invariant other than heap order. The entire structure is maintained by a
// single primitive, the skew merge, which combines two heap-ordered
// subtrees into one:
//
//  1. Compare the keys of the two roots.
//  2. Recursively merge the root with the larger key into the right
//     subtree of the root with the smaller key.
//  3. Attach the result as a child of the smaller root, swapping that
//     root's children in the process.
//
// The child swap is what makes the heap self-adjusting: without it,
// repeated merging degenerates into a linked list. With it, amortized
// analysis bounds every operation at O(log n) over a sequence, although a
// single operation may still take O(n) on a degenerate tree. All mutating
// operations reduce to skew merge:
//
//   - Insert merges a fresh single-entry tree with the root.
//   - ExtractMinimum removes the root and merges its two children.
//   - DecreaseKey cuts the entry, splices the merge of its children into
//     its old slot, lowers the key, and merges the entry back with the
//     root.
//   - Delete performs the same cut and splice but discards the entry.
//   - Union merges the roots of the two heaps and hands over ownership of
//     the donor's entries in O(1).
//
// Key features:
//   - O(log n) amortized insert, extract, decrease-key, delete and union
//   - Entry handles supporting in-place key decrease and arbitrary removal
//   - O(1) Holds check via a shared ownership token
//   - Fail-fast iteration detecting structural modification mid-walk
//
// Basic usage:
//
//	h := skew.New[int, string]()
//	h.Insert(5, "five")
//	h.Insert(3, "three")
//	h.Insert(8, "eight")
//
//	e, _ := h.Minimum()        // 3 -> "three"
//	e, _ = h.ExtractMinimum()  // removes 3 -> "three"
//	_ = e
//
// Heaps are not synchronized. Callers must ensure sequential access
// externally or instances may be damaged in ways that are subtle and
// difficult to detect.
package skew
