package enums

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/distinct_ive_go/valueset"
)

// PredicatePrefix prefixes every predicate name derived from a value.
const PredicatePrefix = "is_"

// PredicateFor returns the predicate name of a value: "is_" + value.
func PredicateFor(value string) string { return PredicatePrefix + value }

var _ fmt.Stringer = (*Type)(nil)

// Type is one closed enumeration type: a fixed value set plus one interned
// Instance per value. Types are created only through a Registry, which
// guarantees at most one Type per canonical key, so holding two distinct
// *Type means holding two distinct value sets (within one registry).
//
// A Type is immutable after construction and safe for concurrent use. Its
// instance pool is built once, on first demand, and shared by every caller
// from then on.
type Type struct {
	id     string
	key    valueset.Key
	values []string
	ordOf  map[string]int
	preds  []string
	predOf map[string]int
	logger *zap.Logger

	poolOnce sync.Once
	pool     []*Instance
}

func newType(set valueset.ValueSet, logger *zap.Logger) *Type {
	values := set.Values()
	ordOf := make(map[string]int, len(values))
	preds := make([]string, len(values))
	predOf := make(map[string]int, len(values))
	for ord, v := range values {
		ordOf[v] = ord
		pred := PredicateFor(v)
		preds[ord] = pred
		predOf[pred] = ord
	}
	return &Type{
		id:     uuid.New().String(),
		key:    set.Key(),
		values: values,
		ordOf:  ordOf,
		preds:  preds,
		predOf: predOf,
		logger: logger,
	}
}

// New returns the interned singleton instance of value. Requesting a value
// outside the type's value set fails with ErrInvalidValue.
//
// The first successful call builds the whole instance pool; every later
// call is a lock-free lookup returning the exact same pointer.
func (t *Type) New(value string) (*Instance, error) {
	ord, ok := t.ordOf[value]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in %s", ErrInvalidValue, value, t)
	}
	t.buildPool()
	return t.pool[ord], nil
}

// MustNew is the panic-on-failure variant of New.
func (t *Type) MustNew(value string) *Instance {
	ins, err := t.New(value)
	if err != nil {
		panic(err)
	}
	return ins
}

// Instances returns every interned instance in value order, building the
// pool if no one has yet. The slice is a fresh copy; the instances are the
// shared singletons.
func (t *Type) Instances() []*Instance {
	t.buildPool()
	out := make([]*Instance, len(t.pool))
	copy(out, t.pool)
	return out
}

// Values returns the canonical values in ascending order, as a fresh copy.
func (t *Type) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

// Predicates returns the predicate names in value order, as a fresh copy.
// preds[i] corresponds to Values()[i].
func (t *Type) Predicates() []string {
	out := make([]string, len(t.preds))
	copy(out, t.preds)
	return out
}

// Has reports whether value is a member of the type's value set.
func (t *Type) Has(value string) bool {
	_, ok := t.ordOf[value]
	return ok
}

// Len returns the number of values.
func (t *Type) Len() int { return len(t.values) }

// Key returns the canonical key the type is interned under.
func (t *Type) Key() valueset.Key { return t.key }

func (t *Type) String() string { return "enum(" + string(t.key) + ")" }

// buildPool interns one Instance per value, exactly once per Type. sync.Once
// makes the pool visible to every goroutine that passes through it.
func (t *Type) buildPool() {
	t.poolOnce.Do(func() {
		pool := make([]*Instance, len(t.values))
		for ord := range t.values {
			pool[ord] = &Instance{typ: t, ord: ord}
		}
		t.pool = pool
		t.logger.Debug("built enum instance pool",
			zap.String("type_id", t.id),
			zap.String("key", string(t.key)),
			zap.Int("size", len(pool)),
		)
	})
}
