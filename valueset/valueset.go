// Package valueset canonicalizes raw string sequences into the validated,
// deduplicated, sorted value sets that back enumeration types.
//
// Canonicalization is a pure function: the same underlying set of values
// always produces the same ValueSet and the same Key, regardless of input
// order or duplicate count. Everything downstream (type interning, singleton
// instances) relies on that determinism.
package valueset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

// separator joins canonical values into a Key. Values are validated to be
// alphanumeric, so the separator can never occur inside a value.
const separator = ","

var (
	// ErrEmptyValueSet indicates that canonicalization produced no values.
	ErrEmptyValueSet = errors.New("value set is empty")
	// ErrInvalidCharacter indicates a value outside [A-Za-z0-9]+.
	ErrInvalidCharacter = errors.New("value contains invalid character")
)

// Key is the canonical cache key of a ValueSet: the sorted distinct values
// joined by ",". Two ValueSets are equal as sets iff their Keys are equal.
type Key string

func (k Key) String() string { return string(k) }

// Digest returns the xxhash of the key. Registries use it to pick lock
// shards; it never participates in identity.
func (k Key) Digest() uint64 { return xxhash.Sum64String(string(k)) }

// ValueSet is a deduplicated, lexicographically sorted, validated set of
// alphanumeric values. The zero value is empty and rejected by registries;
// build one with Canonicalize.
type ValueSet struct {
	values []string
	key    Key
}

// Canonicalize normalizes raw values into a ValueSet: duplicates are
// dropped, survivors validated against [A-Za-z0-9]+ and sorted
// lexicographically. The input slice is never mutated.
//
// Every invalid value is reported; the returned error aggregates them and
// matches ErrInvalidCharacter under errors.Is. An input that dedupes to
// nothing fails with ErrEmptyValueSet.
func Canonicalize(raw []string) (ValueSet, error) {
	seen := make(map[string]struct{}, len(raw))
	values := make([]string, 0, len(raw))
	var errs []error
	for _, v := range raw {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if err := validate(v); err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	if err := multierr.Combine(errs...); err != nil {
		return ValueSet{}, err
	}
	if len(values) == 0 {
		return ValueSet{}, ErrEmptyValueSet
	}
	sort.Strings(values)
	return ValueSet{
		values: values,
		key:    Key(strings.Join(values, separator)),
	}, nil
}

// MustCanonicalize is the panic-on-failure variant of Canonicalize.
func MustCanonicalize(raw []string) ValueSet {
	vs, err := Canonicalize(raw)
	if err != nil {
		panic(err)
	}
	return vs
}

// Values returns the canonical values in ascending order. The result is a
// fresh copy; mutating it cannot affect the set.
func (vs ValueSet) Values() []string {
	out := make([]string, len(vs.values))
	copy(out, vs.values)
	return out
}

// Key returns the canonical cache key.
func (vs ValueSet) Key() Key { return vs.key }

// Len returns the number of distinct values.
func (vs ValueSet) Len() int { return len(vs.values) }

// Contains reports whether v is a member, by binary search over the sorted
// values.
func (vs ValueSet) Contains(v string) bool {
	i := sort.SearchStrings(vs.values, v)
	return i < len(vs.values) && vs.values[i] == v
}

func (vs ValueSet) String() string { return string(vs.key) }

func validate(v string) error {
	if v == "" {
		return fmt.Errorf("%w: value is empty", ErrInvalidCharacter)
	}
	for _, r := range v {
		if !isAlnum(r) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidCharacter, v, r)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}
