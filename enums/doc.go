// Package enums provides closed, symbolic enumeration types built at runtime
// from plain string values, with interned singleton instances.
//
// # Why runtime enums?
//
// Go's iota enums are compile-time artifacts: adding a value means editing
// source. Plenty of systems learn their symbol sets at runtime instead,
// from config, schemas, or wire data, and still want enum ergonomics:
//
//   - a closed set: values outside the set are rejected, not silently kept
//   - identity equality: comparing two instances is one pointer comparison
//   - distinct types: "blue" of one enum never equals "blue" of another
//
// This package provides those guarantees without code generation.
//
// # Shape of the API
//
// A Registry interns one Type per canonical value set. Requesting the same
// set twice, in any order and with any duplication, returns the exact same
// *Type:
//
//	color := enums.MustNew("red", "green", "blue")
//	again := enums.MustNew("blue", "red", "green", "red")
//	// color == again
//
//	red := color.MustNew("red")
//	red.Equals(color.MustNew("red")) // true, same pointer
//	red.Check("is_red")              // true
//	red.Check("is_blue")             // false
//
// Values are canonicalized before interning: deduplicated, validated against
// [A-Za-z0-9]+, and sorted lexicographically. Canonical order is the only
// order the package exposes.
//
// # Registries
//
// The package-level New and MustNew use one process-wide registry, which is
// the common case: enum types behave like process-global constants. Code
// that needs isolation (tests, multi-tenant schema loading) builds its own
// with NewRegistry; types interned in different registries are always
// distinct, whatever their values.
//
// The backing table of a registry is pluggable through the TypeStore
// interface. The default is an in-process sync.Map; see examples/custom_store
// for a transactional memdb store and a ristretto cache tier.
//
// # Concurrency
//
// Every exported operation is safe for concurrent use. A registry guarantees
// at most one Type is ever constructed per canonical key, and a Type builds
// its instance pool exactly once, so instances really are singletons across
// goroutines.
package enums
