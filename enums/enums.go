package enums

import "sync"

// defaultRegistry backs the package-level factory functions. It is built on
// first use and lives for the life of the process.
var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Default returns the process-wide registry used by New and MustNew.
func Default() *Registry { return defaultRegistry() }

// New canonicalizes values and returns the type interned for the resulting
// set in the process-wide registry. Callers anywhere in the process asking
// for the same set of values, in any order and with any duplication, receive
// the same *Type.
func New(values ...string) (*Type, error) {
	return Default().New(values...)
}

// MustNew is the panic-on-failure variant of New, for enum types declared at
// package init where a bad literal is a programming error:
//
//	var Color = enums.MustNew("red", "green", "blue")
func MustNew(values ...string) *Type {
	return Default().MustNew(values...)
}
