package asn1types

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"time"
)

// AsnType is the capability interface every representable defined type
// implements: it declares the single Tag that identifies values of the type
// on the wire.
//
// AsnTag must behave as a constant of the type. It must not depend on the
// receiver's value (implementations are routinely called on zero values) and
// it must stay stable for the lifetime of the type definition - the tag is
// part of the type's identity, not data.
//
// Plain Go types (booleans, integers, strings, byte slices, slices, arrays,
// maps) cannot carry methods and are instead resolved through TagOf's type
// table. Defined aggregate types usually do not implement AsnTag by hand -
// they embed Sequence, Set, or Choice instead.
type AsnType interface {
	AsnTag() Tag
}

// Sequence implements AsnType in order to embed into user-defined struct
// types, declaring them SEQUENCE values with zero memory cost.
//
// Although declaring an AsnTag method by hand is type-equivalent, embedding
// keeps derived types down to a single line and guarantees the method stays
// a constant lookup.
type Sequence struct{}

func (Sequence) AsnTag() Tag { return TagSequence }

// Set implements AsnType in order to embed into user-defined struct types,
// declaring them SET values with zero memory cost.
type Set struct{}

func (Set) AsnTag() Tag { return TagSet }

// Choice implements AsnType in order to embed into user-defined union types.
// A CHOICE value has no single wire identity - its tag is that of whichever
// alternative is active - so the declared tag is the sentinel
// TagEndOfContents, signalling to engines that they must inspect the active
// alternative at runtime instead of trusting a static lookup.
type Choice struct{}

func (Choice) AsnTag() Tag { return TagEndOfContents }

// ErrNotRepresentable reports a type that neither implements AsnType nor
// matches any entry of the type table. Such a type has no ASN.1 identity and
// cannot be carried by this library.
var ErrNotRepresentable = errors.New("asn1types: type is not ASN.1-representable")

// TagOf resolves the tag identifying v's type.
//
// Defined types resolve through their AsnType implementation, except
// transparent wrappers (Optional), which resolve as their element type.
// Everything else resolves through the same type table as TagOfType. A nil
// interface and any type outside the table fail with an error wrapping
// ErrNotRepresentable.
func TagOf(v any) (Tag, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: untyped nil", ErrNotRepresentable)
	}
	// Transparent wrappers resolve by type, as their element; see TagOfType.
	if _, ok := v.(elementCarrier); ok {
		return TagOfType(reflect.TypeOf(v))
	}
	if x, ok := v.(AsnType); ok {
		// A nil pointer satisfies the interface through its element type's
		// method set; calling through it would dereference nil. Resolve such
		// inputs by type instead.
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return TagOfType(rv.Type())
		}
		return x.AsnTag(), nil
	}
	return TagOfType(reflect.TypeOf(v))
}

// MustTagOf is like TagOf but panics where TagOf errors. Use it in variable
// initialisers and other spots where the type at hand is known to be
// representable.
func MustTagOf(v any) Tag {
	t, err := TagOf(v)
	if err != nil {
		panic(fmt.Sprintf("asn1types: un-taggable value (type %T): %v", v, err))
	}
	return t
}

// Well-known types the table matches by identity rather than kind.
var (
	bigIntType  = reflect.TypeFor[big.Int]()
	timeType    = reflect.TypeFor[time.Time]()
	asnTypeType = reflect.TypeFor[AsnType]()
)

// TagOfType resolves the tag identifying the type t. It is the explicit
// per-type table that the derive facility and the codec engines consult for
// plain Go types; the binding rules are:
//
//   - defined types that implement AsnType declare their own tag
//   - Optional resolves as its element type: absence is a property of
//     values, never of identity, and an unrepresentable element reports
//     an error here rather than escalating AsnTag's panic
//   - booleans resolve to BOOLEAN
//   - every fixed-width signed and unsigned integer, and big.Int, resolve
//     to INTEGER
//   - strings resolve to UTF8String
//   - byte slices resolve to OCTET STRING; all other slices to SEQUENCE
//   - arrays resolve to SEQUENCE regardless of element (a fixed-size byte
//     array is a SEQUENCE of INTEGERs, not an octet buffer)
//   - maps resolve to SEQUENCE regardless of key and element
//   - time.Time resolves to GeneralizedTime, the general calendar form;
//     use the UTCTime defined type for the UTC_TIME binding
//
// Pointer types resolve through their element type, however deep. Interface
// types are never representable - their values defer to content (see Open).
// Types matching no rule fail with an error wrapping ErrNotRepresentable:
// aggregates declare their identity by embedding Sequence, Set, or Choice
// (or implementing AsnType), never by structural guesswork.
func TagOfType(t reflect.Type) (Tag, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil type", ErrNotRepresentable)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		// Interface types have no static tag of their own; their values
		// resolve through the concrete payload (see Open).
		return 0, fmt.Errorf("%w: interface %v defers its tag to content", ErrNotRepresentable, t)
	}

	// Transparent wrappers resolve as their element.
	if carrier, ok := reflect.Zero(t).Interface().(elementCarrier); ok {
		return TagOfType(carrier.elementType())
	}

	// Defined types win over their underlying kind.
	if t.Implements(asnTypeType) {
		return reflect.Zero(t).Interface().(AsnType).AsnTag(), nil
	}
	if reflect.PointerTo(t).Implements(asnTypeType) {
		// Pointer-receiver implementation: materialise an addressable zero
		// value to call through.
		return reflect.New(t).Interface().(AsnType).AsnTag(), nil
	}

	switch t {
	case bigIntType:
		return TagInteger, nil
	case timeType:
		return TagGeneralizedTime, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return TagBoolean, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TagInteger, nil
	case reflect.String:
		return TagUTF8String, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return TagOctetString, nil
		}
		return TagSequence, nil
	case reflect.Array, reflect.Map:
		return TagSequence, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrNotRepresentable, t)
}

// SequenceOfValues is the marker interface implemented by defined collection
// types that carry their elements in order, as an ASN.1 SEQUENCE OF, even
// though their underlying kind does not reveal it (a struct-backed list, for
// example). Slices and arrays need no marker - SequenceOfType recognises
// them by kind.
type SequenceOfValues interface {
	// AsnSequenceOf is a no-op method marking the ordered-elements capability.
	AsnSequenceOf()
}

var sequenceOfValuesType = reflect.TypeOf((*SequenceOfValues)(nil)).Elem()

// SequenceOfType reports whether values of type t carry their elements as an
// ordered SEQUENCE OF. Engines use it to choose a repetition-encoding
// strategy, because the tag alone does not disambiguate intent: a SET also
// resolves to a non-SEQUENCE tag, while a map resolves to SEQUENCE despite
// being unordered.
//
// It is true exactly for types implementing SequenceOfValues and for plain
// non-byte slices and arrays (byte slices are octet buffers, not element
// sequences). A defined type that declares its own tag owns its layout with
// it - ObjectIdentifier is backed by a slice of arcs yet encodes as a
// primitive - so such types are never sequence-like by kind, only by
// marker. Maps and SET collections are false.
func SequenceOfType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Implements(sequenceOfValuesType) || reflect.PointerTo(t).Implements(sequenceOfValuesType) {
		return true
	}
	// Declaring a tag means owning the layout that goes with it.
	if t.Implements(asnTypeType) || reflect.PointerTo(t).Implements(asnTypeType) {
		return false
	}
	switch t.Kind() {
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}
