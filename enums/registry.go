package enums

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/distinct_ive_go/enums/internal/shardlock"
	"github.com/on-the-ground/distinct_ive_go/valueset"
)

// defaultLockShards bounds contention between first-time creations of
// unrelated keys. Reads never take these locks, so the count only matters
// under concurrent cold-start bursts.
const defaultLockShards = 16

type registryConfig struct {
	logger     *zap.Logger
	store      TypeStore
	lockShards int
}

func (cfg *registryConfig) normalize() {
	if cfg.logger == nil {
		logger, _ := zap.NewProduction()
		cfg.logger = logger
	}
	if cfg.store == nil {
		cfg.store = newInMemStore()
	}
	if cfg.lockShards < 1 {
		cfg.lockShards = defaultLockShards
	}
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryConfig)

// WithLogger sets the logger for registry and type lifecycle events.
// Defaults to zap's production logger.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(cfg *registryConfig) { cfg.logger = logger }
}

// WithStore sets the backing TypeStore. Defaults to an in-process sync.Map.
// A store shared between registries still interns a single winner per key,
// but each registry logs and shards independently.
func WithStore(store TypeStore) RegistryOption {
	return func(cfg *registryConfig) { cfg.store = store }
}

// WithLockShards sets the number of creation lock shards. Values below 1
// fall back to the default.
func WithLockShards(n int) RegistryOption {
	return func(cfg *registryConfig) { cfg.lockShards = n }
}

// Registry interns enumeration types by canonical key: however many times a
// value set is requested, concurrently or not, exactly one Type exists for
// it. Independent registries intern independently.
//
// All methods are safe for concurrent use.
type Registry struct {
	id     string
	logger *zap.Logger
	store  TypeStore
	locks  *shardlock.Pool
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	var cfg registryConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()

	r := &Registry{
		id:     uuid.New().String(),
		logger: cfg.logger,
		store:  cfg.store,
		locks:  shardlock.New(cfg.lockShards),
	}
	r.logger.Debug("created enum registry",
		zap.String("registry_id", r.id),
		zap.Int("lock_shards", r.locks.Size()),
	)
	return r
}

// New canonicalizes values and returns the interned type for the resulting
// set. It is the one-call path from raw strings to a usable enum type:
//
//	color, err := reg.New("red", "green", "blue")
func (r *Registry) New(values ...string) (*Type, error) {
	set, err := valueset.Canonicalize(values)
	if err != nil {
		return nil, err
	}
	return r.GetOrCreate(set)
}

// MustNew is the panic-on-failure variant of New.
func (r *Registry) MustNew(values ...string) *Type {
	t, err := r.New(values...)
	if err != nil {
		panic(err)
	}
	return t
}

// GetOrCreate returns the type interned under set's key, constructing and
// registering it first if no one has. Concurrent calls with the same key all
// return the same *Type; the loser of a construction race discards its
// candidate and adopts the winner.
func (r *Registry) GetOrCreate(set valueset.ValueSet) (*Type, error) {
	if set.Len() == 0 {
		return nil, ErrEmptyValueSet
	}
	key := set.Key()

	// Fast path: already interned, lock-free.
	if t, ok, err := r.store.Load(key); err != nil {
		return nil, fmt.Errorf("enum registry: load %q: %w", key, err)
	} else if ok {
		return t, nil
	}

	mu := r.locks.For(key.Digest())
	mu.Lock()
	defer mu.Unlock()

	// Re-check under the shard lock: another goroutine may have interned
	// the key while we waited.
	if t, ok, err := r.store.Load(key); err != nil {
		return nil, fmt.Errorf("enum registry: load %q: %w", key, err)
	} else if ok {
		return t, nil
	}

	t := newType(set, r.logger)
	inserted, err := r.store.InsertIfAbsent(key, t)
	if err != nil {
		return nil, fmt.Errorf("enum registry: insert %q: %w", key, err)
	}
	if !inserted {
		// The store is shared beyond this registry; adopt its winner.
		winner, ok, err := r.store.Load(key)
		if err != nil {
			return nil, fmt.Errorf("enum registry: load winner of %q: %w", key, err)
		}
		if !ok {
			return nil, fmt.Errorf("enum registry: insert of %q rejected but no winner found", key)
		}
		return winner, nil
	}

	r.logger.Debug("interned enum type",
		zap.String("registry_id", r.id),
		zap.String("type_id", t.id),
		zap.String("key", string(key)),
		zap.Int("size", t.Len()),
	)
	return t, nil
}

// Lookup returns the type interned under key, without creating anything.
func (r *Registry) Lookup(key valueset.Key) (*Type, bool) {
	t, ok, err := r.store.Load(key)
	if err != nil {
		r.logger.Debug("enum registry lookup failed",
			zap.String("registry_id", r.id),
			zap.String("key", string(key)),
			zap.Error(err),
		)
		return nil, false
	}
	return t, ok
}

// Len returns the number of interned types.
func (r *Registry) Len() int {
	n := 0
	_ = r.store.Range(func(valueset.Key, *Type) bool {
		n++
		return true
	})
	return n
}

// Keys returns the canonical keys of every interned type, sorted, so that
// callers iterate deterministically over an unordered store.
func (r *Registry) Keys() []valueset.Key {
	var keys []valueset.Key
	_ = r.store.Range(func(key valueset.Key, _ *Type) bool {
		keys = append(keys, key)
		return true
	})
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
