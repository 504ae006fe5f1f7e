package asn1types

import (
	"fmt"
	"reflect"
)

// SetOf is a unique-element collection bound to the SET tag. It is a map
// under the hood, so the zero value is nil; allocate through NewSetOf (or
// make) before adding elements.
//
// Slices and arrays resolve to SEQUENCE through the TagOf table without any
// wrapping; SetOf exists because Go has no native set and because tag
// identity depends on the container kind, not the element kind - a SetOf[T]
// and a []T with the same T carry different tags.
//
// Element order is deliberately unspecified. Uniqueness is the type-level
// invariant; the canonical ordering SET OF values need on the wire depends
// on the encoded form of each element, which only an encoding engine can
// compute.
type SetOf[T comparable] map[T]struct{}

// NewSetOf returns a SetOf holding the given elements, duplicates collapsed.
func NewSetOf[T comparable](elements ...T) SetOf[T] {
	s := make(SetOf[T], len(elements))
	for _, v := range elements {
		s[v] = struct{}{}
	}
	return s
}

// AsnTag returns the SET tag, whatever the element type.
func (SetOf[T]) AsnTag() Tag { return TagSet }

// Add inserts v into the set. Adding an element already present has no
// effect.
func (s SetOf[T]) Add(v T) { s[v] = struct{}{} }

// Remove deletes v from the set. Removing an absent element has no effect.
func (s SetOf[T]) Remove(v T) { delete(s, v) }

// Contains reports whether v is an element of the set.
func (s SetOf[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s SetOf[T]) Len() int { return len(s) }

// Elements returns the set's elements in unspecified order.
func (s SetOf[T]) Elements() []T {
	elements := make([]T, 0, len(s))
	for v := range s {
		elements = append(elements, v)
	}
	return elements
}

// Optional wraps a representable value that may be absent. Presence is a
// property of the value, never of the type: an Optional[T] carries exactly
// T's tag whether or not a value is present, so marking a field optional
// does not disturb its wire identity.
//
// The zero value is absent. Optional is a value type - Set and Clear mutate
// through a pointer, everything else reads through a copy.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional. It is equivalent to the zero value and
// exists to make intent readable at construction sites.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// AsnTag returns T's tag: absence does not change identity.
//
// It panics if T itself is not representable. Declaring an Optional of an
// unrepresentable type is a programming error on par with declaring the
// type alone, and Go offers no way to reject it at compile time; the query
// surface (TagOf, TagOfType) reports the same condition as an error.
func (Optional[T]) AsnTag() Tag {
	t, err := TagOfType(reflect.TypeFor[T]())
	if err != nil {
		panic(fmt.Sprintf("asn1types: Optional element %v: %v", reflect.TypeFor[T](), err))
	}
	return t
}

// An elementCarrier is a transparent wrapper standing in for its element
// type: it resolves to the element's tag (see TagOfType) and traverses as
// the element (see Walk). Optional implements it because its fields are
// unexported, which hides the element from any reflection walk.
type elementCarrier interface {
	elementType() reflect.Type
}

func (Optional[T]) elementType() reflect.Type { return reflect.TypeFor[T]() }

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool { return o.present }

// Get returns the held value and whether one is present. When absent, the
// returned value is T's zero value.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Set stores v, making the Optional present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.present = true
}

// Clear removes any held value, making the Optional absent.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.present = false
}
