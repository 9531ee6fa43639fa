// Package heap defines the contract shared by a family of mergeable
// priority-queue implementations, together with the generic scaffolding they
// all need: multiset equality, order-independent hashing, read-only
// key/value/entry views, bulk insertion and traversal helpers.
//
// A heap maintains a collection of key/value entries ordered by a
// user-supplied total order on keys. Beyond the classic insert, minimum and
// extract-minimum operations, the contract includes in-place key decrease,
// arbitrary-entry deletion and structural union, each addressed through the
// Entry handle returned by Insert.
//
// Key features:
//   - Generic contract supporting any key type with a Compare function and
//     any value type
//   - O(1) ownership checks: Holds answers "is this exact entry currently
//     owned by this heap" without walking the tree
//   - Fail-fast iteration: structural modification during a traversal is
//     detected and reported instead of producing undefined behavior
//   - Read-only collection views over keys, values and entries
//   - Order-independent multiset equality and hashing across heaps of
//     different shapes and implementations
//
// Two containment relations exist and are intentionally different: a heap
// holds an entry when that exact object is owned by it (an identity check),
// while it contains an entry when any of its entries carries an equal key
// and value (an O(n) search). See Heap.Holds and Contains.
//
// Implementations are not synchronized. Callers must ensure sequential
// access externally; the fail-fast machinery is a single-threaded safety
// net, not a concurrency primitive.
//
// The skew heap implementation lives in the skew subpackage. Flattened
// serialization lives in heapio, snapshot persistence in storage/pebble,
// and k-way sorted merging in merge.
package heap
