package asn1types

import (
	"errors"
	"testing"
)

// An open value has no static identity: whatever it holds, the declared tag
// is the sentinel, and the real identity comes out of ContentTag.
func TestOpen(t *testing.T) {
	tests := []struct {
		Name    string
		Payload any
		Content Tag
	}{
		{"int", 5, TagInteger},
		{"string", "x", TagUTF8String},
		{"oid", MustObjectIdentifier(1, 2), TagObjectIdentifier},
		{"wrapped", Implicit[Context3, int]{Value: 9}, NewTag(ClassContext, 3)},
		{"raw", RawValue{Tag: NewTag(ClassApplication, 2), Contents: []byte{0xCA, 0xFE}}, NewTag(ClassApplication, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			o, err := NewOpen(tt.Payload)
			if err != nil {
				t.Fatalf("NewOpen(%#v): %v", tt.Payload, err)
			}
			if got := o.AsnTag(); got != TagEndOfContents {
				t.Errorf("AsnTag() = %v, want the sentinel", got)
			}
			got, err := o.ContentTag()
			if err != nil {
				t.Fatalf("ContentTag(): %v", err)
			}
			if got != tt.Content {
				t.Errorf("ContentTag() = %v, want %v", got, tt.Content)
			}
		})
	}
}

func TestNewOpen_rejectsUnrepresentable(t *testing.T) {
	_, err := NewOpen(struct{ X int }{})
	if !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("NewOpen(bare struct) = %v, want ErrNotRepresentable", err)
	}
	_, err = NewOpen(nil)
	if !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("NewOpen(nil) = %v, want ErrNotRepresentable", err)
	}
}

func TestMustOpen(t *testing.T) {
	o := MustOpen("payload")
	if got, ok := o.Value().(string); !ok || got != "payload" {
		t.Errorf("Value() = %#v, want %q", o.Value(), "payload")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustOpen(func) did not panic")
		}
	}()
	MustOpen(func() {})
}

func TestOpen_zeroValue(t *testing.T) {
	var o Open

	if o.Value() != nil {
		t.Errorf("Value() = %#v, want nil", o.Value())
	}
	if _, err := o.ContentTag(); !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("ContentTag() on zero Open = %v, want ErrNotRepresentable", err)
	}
}

// A RawValue keeps the engine's tag and octets exactly as given; this layer
// never interprets Contents.
func TestRawValue(t *testing.T) {
	raw := RawValue{Tag: NewTag(ClassPrivate, 9), Contents: []byte{0x30, 0x00}}

	if got := raw.AsnTag(); got != TagEndOfContents {
		t.Errorf("AsnTag() = %v, want the sentinel", got)
	}

	o := MustOpen(raw)
	got, err := o.ContentTag()
	if err != nil {
		t.Fatalf("ContentTag(): %v", err)
	}
	if got != raw.Tag {
		t.Errorf("ContentTag() = %v, want the raw tag %v", got, raw.Tag)
	}
}
