package asn1types

import (
	"errors"
	"math/big"
	"reflect"
	"runtime"
	"testing"
	"time"
)

// TagOf resolves plain Go values through the type table: every fixed-width
// integer lands on INTEGER, byte slices on OCTET STRING, everything
// element-bearing on SEQUENCE.
func TestTagOf_builtins(t *testing.T) {
	tests := []struct {
		Name  string
		Value any
		Want  Tag
	}{
		{"bool", true, TagBoolean},
		{"int", int(-5), TagInteger},
		{"int8", int8(-5), TagInteger},
		{"int16", int16(-5), TagInteger},
		{"int32", int32(-5), TagInteger},
		{"int64", int64(-5), TagInteger},
		{"uint", uint(5), TagInteger},
		{"uint8", uint8(5), TagInteger},
		{"uint16", uint16(5), TagInteger},
		{"uint32", uint32(5), TagInteger},
		{"uint64", uint64(5), TagInteger},
		{"big.Int", big.NewInt(1 << 62), TagInteger},
		{"string", "hello", TagUTF8String},
		{"bytes", []byte{0xDE, 0xAD}, TagOctetString},
		{"slice-of-int", []int{1, 2, 3}, TagSequence},
		{"slice-of-string", []string{"a"}, TagSequence},
		{"slice-of-slice", [][]int{{1}}, TagSequence},
		{"array-of-int", [4]int{1, 2, 3, 4}, TagSequence},
		// A fixed-size byte array is a SEQUENCE of INTEGERs, unlike the
		// variable-length byte slice next to it.
		{"array-of-byte", [4]byte{1, 2, 3, 4}, TagSequence},
		{"map", map[string]int{"a": 1}, TagSequence},
		{"time.Time", time.Unix(0, 0), TagGeneralizedTime},
		{"pointer", new(int), TagInteger},
		{"pointer-pointer", new(*string), TagUTF8String},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := TagOf(tt.Value)
			if err != nil {
				t.Fatalf("TagOf(%#v): %v", tt.Value, err)
			}
			if got != tt.Want {
				t.Errorf("TagOf(%#v) = %v, want %v", tt.Value, got, tt.Want)
			}
		})
	}
}

// Embedding one of the aggregate markers is all it takes for a struct to
// resolve; a bare struct has no ASN.1 identity at all.
func TestTagOf_definedTypes(t *testing.T) {
	type (
		Certificate struct {
			Sequence
			Version int
		}
		Attributes struct {
			Set
			Values []string
		}
		Time struct {
			Choice
			UTC         *UTCTime
			Generalized *GeneralizedTime
		}
		unmarked struct {
			Version int
		}
	)

	tests := []struct {
		Name  string
		Value any
		Want  Tag
	}{
		{"sequence", Certificate{Version: 3}, TagSequence},
		{"set", Attributes{}, TagSet},
		{"choice", Time{}, TagEndOfContents},
		{"pointer-to-sequence", &Certificate{}, TagSequence},
		{"nil-pointer-to-sequence", (*Certificate)(nil), TagSequence},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got, err := TagOf(tt.Value)
			if err != nil {
				t.Fatalf("TagOf(%#v): %v", tt.Value, err)
			}
			if got != tt.Want {
				t.Errorf("TagOf(%#v) = %v, want %v", tt.Value, got, tt.Want)
			}
		})
	}

	if _, err := TagOf(unmarked{Version: 3}); !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("TagOf(unmarked struct) = %v, want ErrNotRepresentable", err)
	}
}

// A CHOICE never resolves to a Universal type tag: the sentinel it declares
// is the one Universal coordinate X.690 reserves away from types.
func TestTagOf_choiceNeverUniversalType(t *testing.T) {
	type PresentationValue struct {
		Choice
		Single *OctetString
		Octets *BitString
	}

	got, err := TagOf(PresentationValue{})
	if err != nil {
		t.Fatalf("TagOf(PresentationValue{}): %v", err)
	}
	for _, tt := range universalTagTests {
		if tt.Number != 0 && got == tt.Tag {
			t.Errorf("choice tag %v collides with %s", got, tt.Name)
		}
	}
}

func TestTagOf_errors(t *testing.T) {
	tests := []struct {
		Name  string
		Value any
	}{
		{"nil", nil},
		{"float32", float32(1.5)},
		{"float64", 1.5},
		{"complex", complex(1, 2)},
		{"func", func() {}},
		{"chan", make(chan int)},
		{"bare-struct", struct{ X int }{}},
		// The wrapper is queried like any other value; its element's defect
		// surfaces as this error, not as a panic.
		{"optional-of-func", Optional[func()]{}},
		{"pointer-to-optional-of-func", &Optional[func()]{}},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := TagOf(tt.Value)
			if !errors.Is(err, ErrNotRepresentable) {
				t.Errorf("TagOf(%#v) = %v, want ErrNotRepresentable", tt.Value, err)
			}
		})
	}
}

func TestMustTagOf(t *testing.T) {
	if got := MustTagOf("hello"); got != TagUTF8String {
		t.Errorf("MustTagOf(string) = %v, want %v", got, TagUTF8String)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustTagOf(struct{}{}) did not panic")
		}
	}()
	MustTagOf(struct{}{})
}

// TagOfType is the table behind TagOf; interface types are the one place
// the two disagree, because a value always has a concrete type while a
// reflect.Type may not.
func TestTagOfType_interface(t *testing.T) {
	_, err := TagOfType(asnTypeType)
	if !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("TagOfType(AsnType) = %v, want ErrNotRepresentable", err)
	}
	_, err = TagOfType(reflect.TypeFor[any]())
	if !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("TagOfType(any) = %v, want ErrNotRepresentable", err)
	}
	_, err = TagOfType(nil)
	if !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("TagOfType(nil) = %v, want ErrNotRepresentable", err)
	}
}

// A defined type with its own AsnTag implementation wins over the kind rule
// for its underlying type, on both value and pointer receivers.
func TestTagOfType_definedOverKind(t *testing.T) {
	if got, err := TagOfType(reflect.TypeFor[IA5String]()); err != nil || got != TagIA5String {
		t.Errorf("TagOfType(IA5String) = %v, %v; want %v", got, err, TagIA5String)
	}
	if got, err := TagOfType(reflect.TypeFor[ObjectIdentifier]()); err != nil || got != TagObjectIdentifier {
		t.Errorf("TagOfType(ObjectIdentifier) = %v, %v; want %v", got, err, TagObjectIdentifier)
	}
	if got, err := TagOfType(reflect.TypeFor[BitString]()); err != nil || got != TagBitString {
		t.Errorf("TagOfType(BitString) = %v, %v; want %v", got, err, TagBitString)
	}
}

// Engines resolve a tag per value they encode, so TagOf sits on their hot
// path; the three sub-benchmarks cover the three resolution routes (kind
// table, interface upgrade, wrapper).
func BenchmarkTagOf(b *testing.B) {
	type Certificate struct {
		Sequence
		Version int
	}

	values := []struct {
		Name  string
		Value any
	}{
		{"kind", uint32(5)},
		{"interface", Certificate{}},
		{"wrapped", Implicit[Context0, Certificate]{}},
	}
	for _, bb := range values {
		b.Run(bb.Name, func(b *testing.B) {
			b.RunParallel(func(pb *testing.PB) {
				var doNotOptimise Tag // see https://github.com/golang/go/issues/27400
				for pb.Next() {
					doNotOptimise, _ = TagOf(bb.Value)
				}
				runtime.KeepAlive(doNotOptimise)
			})
		})
	}
}

// sequenceLike is a struct-backed ordered collection for the marker case.
type sequenceLike struct {
	elems []int
}

func (sequenceLike) AsnSequenceOf() {}

func TestSequenceOfType(t *testing.T) {
	tests := []struct {
		Name string
		Type reflect.Type
		Want bool
	}{
		{"slice-of-int", reflect.TypeFor[[]int](), true},
		{"slice-of-string", reflect.TypeFor[[]string](), true},
		{"slice-of-object-identifier", reflect.TypeFor[[]ObjectIdentifier](), true},
		{"array", reflect.TypeFor[[4]int](), true},
		{"array-of-byte", reflect.TypeFor[[4]byte](), true},
		{"pointer-to-slice", reflect.TypeFor[*[]int](), true},
		{"marker-struct", reflect.TypeFor[sequenceLike](), true},
		// Byte slices are octet buffers, not element sequences.
		{"byte-slice", reflect.TypeFor[[]byte](), false},
		// A defined type with a tag of its own owns its layout with it:
		// ObjectIdentifier is backed by arcs yet encodes as a primitive.
		{"object-identifier", reflect.TypeFor[ObjectIdentifier](), false},
		{"pointer-to-object-identifier", reflect.TypeFor[*ObjectIdentifier](), false},
		// Maps share the SEQUENCE tag but impose no element order.
		{"map", reflect.TypeFor[map[string]int](), false},
		{"set-of", reflect.TypeFor[SetOf[int]](), false},
		{"scalar", reflect.TypeFor[int](), false},
		{"string", reflect.TypeFor[string](), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if got := SequenceOfType(tt.Type); got != tt.Want {
				t.Errorf("SequenceOfType(%v) = %v, want %v", tt.Type, got, tt.Want)
			}
		})
	}

	// The marker must never contradict a primitive binding: an engine that
	// trusts it would encode the value as a constructed repetition of its
	// elements instead of as one primitive.
	if tag := MustTagOf(ObjectIdentifier{1, 2}); tag != TagObjectIdentifier {
		t.Errorf("TagOf(ObjectIdentifier) = %v, want %v", tag, TagObjectIdentifier)
	} else if SequenceOfType(reflect.TypeFor[ObjectIdentifier]()) {
		t.Errorf("SequenceOfType(ObjectIdentifier) = true for a type tagged %v", tag)
	}
}
