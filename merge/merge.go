package merge

import (
	"iter"

	"github.com/davidvella/heap"
)

// Tree is a tournament tree over the sorted drains of a set of heaps. It
// is laid out in an array such that nodes N and N+1 have parent N/2: the k
// leaves live in positions k..2k-1, internal nodes in 1..k-1, and node 0
// holds the current overall winner.
type Tree[K, V any] struct {
	compare heap.Compare[K]
	nodes   []node[K, V]
	count   int
}

type node[K, V any] struct {
	index int              // losing leaf, or the winning leaf for node 0
	entry heap.Entry[K, V] // entry copied up from that leaf
	done  bool             // the leaf's source is exhausted
	src   heap.Heap[K, V]  // leaf nodes only
}

// New builds a tournament tree draining the given heaps. All heaps must
// agree with compare; entries surface in non-decreasing key order under it.
func New[K, V any](compare heap.Compare[K], heaps ...heap.Heap[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{
		compare: compare,
		nodes:   make([]node[K, V], len(heaps)*2),
		count:   len(heaps),
	}
	for i, h := range heaps {
		t.nodes[i+len(heaps)].src = h
	}
	return t
}

// Sorted returns the entries of the given heaps as one sequence in
// non-decreasing key order. The heaps are drained as the sequence is
// consumed; once it is exhausted every source heap is empty.
func Sorted[K, V any](compare heap.Compare[K], heaps ...heap.Heap[K, V]) iter.Seq[heap.Entry[K, V]] {
	return New(compare, heaps...).All()
}

// All returns the merged sequence. It may be consumed once; the sources
// are empty afterwards.
func (t *Tree[K, V]) All() iter.Seq[heap.Entry[K, V]] {
	return func(yield func(heap.Entry[K, V]) bool) {
		if t.count == 0 {
			return
		}
		for i := t.count; i < len(t.nodes); i++ {
			t.moveNext(i)
		}
		winner := t.playGame(1)
		t.nodes[0].index = winner
		t.nodes[0].entry = t.nodes[winner].entry
		t.nodes[0].done = t.nodes[winner].done

		for !t.nodes[0].done && yield(t.nodes[0].entry) {
			leaf := t.nodes[0].index
			t.moveNext(leaf)
			t.replay(leaf)
		}
	}
}

// moveNext pulls the next entry from the leaf's source heap, flagging the
// leaf once the source is empty.
func (t *Tree[K, V]) moveNext(index int) {
	n := &t.nodes[index]
	e, err := n.src.ExtractMinimum()
	if err != nil {
		n.entry = nil
		n.done = true
		return
	}
	n.entry = e
}

// wins reports whether contestant a (entry ea, exhausted da) beats
// contestant b. An exhausted contestant loses against everything.
func (t *Tree[K, V]) wins(ea heap.Entry[K, V], da bool, eb heap.Entry[K, V], db bool) bool {
	if da {
		return false
	}
	if db {
		return true
	}
	return t.compare(ea.Key(), eb.Key()) < 0
}

// playGame finds the winning leaf below pos, storing the loser at every
// internal node on the way down.
func (t *Tree[K, V]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)

	loser, winner := left, right
	if t.wins(t.nodes[left].entry, t.nodes[left].done, t.nodes[right].entry, t.nodes[right].done) {
		loser, winner = right, left
	}
	t.nodes[pos].index = loser
	t.nodes[pos].entry = t.nodes[loser].entry
	t.nodes[pos].done = t.nodes[loser].done
	return winner
}

// replay re-runs the contests from a refreshed leaf up to the root.
func (t *Tree[K, V]) replay(pos int) {
	winEntry, winDone := t.nodes[pos].entry, t.nodes[pos].done
	for n := pos / 2; n != 0; n /= 2 {
		node := &t.nodes[n]
		if t.wins(node.entry, node.done, winEntry, winDone) {
			// The stored loser beats the incoming winner; swap them.
			node.index, pos = pos, node.index
			node.entry, winEntry = winEntry, node.entry
			node.done, winDone = winDone, node.done
		}
	}
	t.nodes[0].index = pos
	t.nodes[0].entry = winEntry
	t.nodes[0].done = winDone
}
