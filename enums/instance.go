package enums

import "fmt"

// Equatable is the equality contract shared by interned values: equality is
// decided by the value itself, against an operand of any type.
type Equatable interface {
	Equals(other any) bool
}

var (
	_ Equatable    = (*Instance)(nil)
	_ fmt.Stringer = (*Instance)(nil)
)

// Instance is the interned singleton handle of one value of one Type. Two
// *Instance are the same value of the same type iff they are equal pointers,
// so == on pointers is the identity check and costs one comparison.
//
// Instances are immutable and safe for concurrent use. They are only handed
// out by Type.New and Type.Instances; there is no way to construct a second
// instance of the same value.
type Instance struct {
	typ *Type
	ord int
}

// Value returns the underlying string value.
func (i *Instance) Value() string { return i.typ.values[i.ord] }

// String returns the underlying string value, so instances format as their
// value under %v and %s.
func (i *Instance) String() string { return i.Value() }

// Type returns the enumeration type that owns the instance.
func (i *Instance) Type() *Type { return i.typ }

// Ordinal returns the position of the instance's value within the type's
// sorted value set.
func (i *Instance) Ordinal() int { return i.ord }

// Equals reports identity when other is an *Instance: same type and same
// ordinal, never true across types even when the underlying strings match.
// When other is a string, it reports content equality against Value().
// Any other operand compares false.
func (i *Instance) Equals(other any) bool {
	switch o := other.(type) {
	case *Instance:
		return o != nil && o.typ == i.typ && o.ord == i.ord
	case string:
		return i.Value() == o
	default:
		return false
	}
}

// NotEquals is the negation of Equals.
func (i *Instance) NotEquals(other any) bool { return !i.Equals(other) }

// Check evaluates a predicate name against the instance: true iff predicate
// is "is_"+Value(). Predicate names of sibling values answer false, and so
// do names the type never defined; Check never errors.
func (i *Instance) Check(predicate string) bool {
	ord, ok := i.typ.predOf[predicate]
	return ok && ord == i.ord
}
