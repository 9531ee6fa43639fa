// Package pebble persists named heap snapshots in a Pebble database. A
// snapshot is a heapio frame: only the flattened key/value multiset is
// stored, and loading rebuilds the tree by reinsertion.
package pebble

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/google/btree"

	"github.com/davidvella/heap"
	"github.com/davidvella/heap/heapio"
)

// ErrSnapshotNotFound is returned by Load when no snapshot exists under
// the given name.
var ErrSnapshotNotFound = errors.New("pebble: snapshot not found")

// Options configures a snapshot store.
type Options struct {
	// Path is the database directory.
	Path string

	// CacheSize is the Pebble block cache size in bytes. Zero means the
	// Pebble default.
	CacheSize int64

	// MaxOpenFiles limits file descriptors. Zero means the Pebble default.
	MaxOpenFiles int
}

// Store persists named heap snapshots. The snapshot names are mirrored in
// an in-memory index rebuilt on open, so List is sorted and cheap.
type Store[K, V any] struct {
	db     *pebble.DB
	keys   heapio.Serializer[K]
	values heapio.Serializer[V]

	mu    sync.Mutex
	names *btree.BTreeG[string]
}

// Open opens or creates a snapshot store at opts.Path. The serializers
// must match the ones the snapshots were saved with.
func Open[K, V any](opts Options, keys heapio.Serializer[K], values heapio.Serializer[V]) (*Store[K, V], error) {
	pebbleOpts := &pebble.Options{
		MaxOpenFiles: opts.MaxOpenFiles,
	}
	if opts.CacheSize > 0 {
		cache := pebble.NewCache(opts.CacheSize)
		defer cache.Unref()
		pebbleOpts.Cache = cache
	}

	db, err := pebble.Open(opts.Path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("pebble: failed to open database: %w", err)
	}

	s := &Store[K, V]{
		db:     db,
		keys:   keys,
		values: values,
		names: btree.NewG[string](2, func(a, b string) bool {
			return a < b
		}),
	}
	if err := s.loadIndex(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store[K, V]) loadIndex() error {
	it, err := s.db.NewIter(nil)
	if err != nil {
		return fmt.Errorf("pebble: failed to scan snapshots: %w", err)
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		s.names.ReplaceOrInsert(string(it.Key()))
	}
	return it.Error()
}

// Save flattens h and stores it under name, replacing any previous
// snapshot with that name. Saving while h is being structurally modified
// fails without touching the database.
func (s *Store[K, V]) Save(_ context.Context, name string, h heap.Heap[K, V]) error {
	var buf bytes.Buffer
	if _, err := heapio.Write(&buf, h, s.keys, s.values); err != nil {
		return fmt.Errorf("pebble: failed to flatten heap %q: %w", name, err)
	}

	if err := s.db.Set([]byte(name), buf.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("pebble: failed to save snapshot %q: %w", name, err)
	}

	s.mu.Lock()
	s.names.ReplaceOrInsert(name)
	s.mu.Unlock()
	return nil
}

// Load rebuilds the snapshot stored under name into h by reinsertion. The
// target heap supplies the key ordering and is not cleared first.
func (s *Store[K, V]) Load(_ context.Context, name string, h heap.Heap[K, V]) error {
	data, closer, err := s.db.Get([]byte(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
		}
		return fmt.Errorf("pebble: failed to read snapshot %q: %w", name, err)
	}
	defer closer.Close()

	if err := heapio.Read(bytes.NewReader(data), h, s.keys, s.values); err != nil {
		return fmt.Errorf("pebble: failed to rebuild heap %q: %w", name, err)
	}
	return nil
}

// List returns the names of all snapshots in lexical order.
func (s *Store[K, V]) List(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, s.names.Len())
	s.names.Ascend(func(name string) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Delete removes the snapshot stored under name. Deleting a name that does
// not exist is not an error.
func (s *Store[K, V]) Delete(_ context.Context, name string) error {
	if err := s.db.Delete([]byte(name), pebble.Sync); err != nil {
		return fmt.Errorf("pebble: failed to delete snapshot %q: %w", name, err)
	}

	s.mu.Lock()
	s.names.Delete(name)
	s.mu.Unlock()
	return nil
}

// Close closes the underlying database.
func (s *Store[K, V]) Close() error {
	return s.db.Close()
}
