package enums

import (
	"sync"

	"github.com/on-the-ground/distinct_ive_go/valueset"
)

// TypeStore is the backing table of a Registry: canonical key to interned
// type. The default is an in-process sync.Map; swap it via WithStore to put
// the table somewhere else (a transactional in-memory database, a cache
// tier, anything that keeps the contract below).
//
// Implementations must be safe for concurrent use. A registry serializes
// writes per key behind its own lock shards, so InsertIfAbsent only races
// with other writers when the store is shared beyond a single registry; the
// insert-if-absent semantics keep even that case single-winner.
type TypeStore interface {
	// Load returns the type registered under key, if any.
	Load(key valueset.Key) (*Type, bool, error)
	// InsertIfAbsent registers t under key unless the key is already
	// taken, and reports whether the insert happened.
	InsertIfAbsent(key valueset.Key, t *Type) (bool, error)
	// Range calls fn for every registered pair until fn returns false.
	// Iteration order is unspecified.
	Range(fn func(key valueset.Key, t *Type) bool) error
}

var _ TypeStore = inMemStore{}

// inMemStore is the default TypeStore, backed by a sync.Map.
type inMemStore struct {
	m *sync.Map
}

func newInMemStore() inMemStore {
	return inMemStore{m: &sync.Map{}}
}

func (s inMemStore) Load(key valueset.Key) (*Type, bool, error) {
	v, ok := s.m.Load(key)
	if !ok {
		return nil, false, nil
	}
	return v.(*Type), true, nil
}

func (s inMemStore) InsertIfAbsent(key valueset.Key, t *Type) (bool, error) {
	_, loaded := s.m.LoadOrStore(key, t)
	return !loaded, nil
}

func (s inMemStore) Range(fn func(key valueset.Key, t *Type) bool) error {
	s.m.Range(func(k, v any) bool {
		return fn(k.(valueset.Key), v.(*Type))
	})
	return nil
}
