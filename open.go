package asn1types

import "fmt"

// Open is a type-erased representable value - ASN.1's ANY / open type. It
// participates in the contract like everything else, but its declared tag is
// the sentinel TagEndOfContents: an open value has no static identity, so an
// engine must resolve the actual tag from the payload through ContentTag at
// encode/decode time.
//
// The payload is any representable value, or a RawValue when the content is
// known only as an already-tagged opaque payload.
type Open struct {
	value any
}

// NewOpen wraps v as an open value. It fails if v is neither representable
// nor a RawValue, so that ContentTag cannot surprise a consumer later.
func NewOpen(v any) (Open, error) {
	if _, err := TagOf(v); err != nil {
		return Open{}, fmt.Errorf("open value: %w", err)
	}
	return Open{value: v}, nil
}

// MustOpen is like NewOpen but panics where it errors.
func MustOpen(v any) Open {
	o, err := NewOpen(v)
	if err != nil {
		panic(fmt.Sprintf("asn1types: %v", err))
	}
	return o
}

// AsnTag returns the sentinel: an open value's identity lives in its
// content.
func (Open) AsnTag() Tag { return TagEndOfContents }

// Value returns the payload, nil for the zero Open.
func (o Open) Value() any { return o.value }

// ContentTag resolves the payload's actual tag. A RawValue payload resolves
// to its own declared Tag; anything else resolves through TagOf. The zero
// Open has no content and fails.
func (o Open) ContentTag() (Tag, error) {
	if raw, ok := o.value.(RawValue); ok {
		return raw.Tag, nil
	}
	if o.value == nil {
		return 0, fmt.Errorf("empty open value: %w", ErrNotRepresentable)
	}
	return TagOf(o.value)
}

// RawValue is an already-tagged payload whose shape this layer does not
// know: the Tag field declares the wire identity and Contents carries the
// payload octets as some engine produced them. Engines round-trip RawValues
// through Open without the contract learning anything about the content -
// the layout of Contents is entirely the engine's business.
//
// Like Open, a RawValue's declared contract tag is the sentinel; its actual
// identity is the Tag field, which only content-level resolution consults.
type RawValue struct {
	Tag      Tag
	Contents []byte
}

func (RawValue) AsnTag() Tag { return TagEndOfContents }
