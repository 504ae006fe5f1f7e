package asn1types_test

import (
	"fmt"

	"github.com/go-asn1types/go-asn1types"
)

// First, we define the message types of a small credential protocol. These
// types demonstrate how ASN.1 definitions translate into plain Go.

// All aggregate types are named structs that embed Sequence, Set, or Choice.
type Credential struct {
	// Always embed one of the markers to declare the aggregate's tag.
	asn1types.Sequence
	// Add your fields here (as many as you see fit).
	Version int
	Subject asn1types.Utf8String
	// Re-tagging is a type, not an annotation: structurally identical
	// fields stay distinguishable by their context tags.
	NotBefore asn1types.Implicit[asn1types.Context0, asn1types.GeneralizedTime]
	NotAfter  asn1types.Implicit[asn1types.Context1, asn1types.GeneralizedTime]
}

// The String method returns a human-readable representation of the value.
func (c Credential) String() string {
	return fmt.Sprintf("(%s/v%d)", c.Subject, c.Version)
}

// CredentialID is a CHOICE between the ways a credential may be named.
// Exactly one alternative is set at a time.
type CredentialID struct {
	asn1types.Choice
	Serial *int
	Name   *asn1types.Utf8String
}

// Remember that external content types must be registered before decoding
// InstanceOf values that may name them.
func init() {
	// It doesn't matter where you register the types, as long as it's before
	// you use them.
	asn1types.RegisterInstanceType(asn1types.MustObjectIdentifier(1, 3, 6, 1, 4, 1, 42, 1), Credential{})
}

//=============================================================================

// Tags resolve statically, from types alone: no value inspection, no
// encoding. This is the lookup every encoding engine starts from.

func ExampleTagOf() {
	fmt.Println(asn1types.MustTagOf(true))
	fmt.Println(asn1types.MustTagOf(42))
	fmt.Println(asn1types.MustTagOf("text"))
	fmt.Println(asn1types.MustTagOf([]byte{0x01}))
	fmt.Println(asn1types.MustTagOf([]int{1, 2}))
	fmt.Println(asn1types.MustTagOf(Credential{}))

	// Not every Go type has an ASN.1 identity.
	_, err := asn1types.TagOf(struct{ X int }{})
	fmt.Println(err)

	// Output:
	// BOOLEAN
	// INTEGER
	// UTF8String
	// OCTET STRING
	// SEQUENCE
	// SEQUENCE
	// asn1types: type is not ASN.1-representable: struct { X int }
}

func ExampleImplicit() {
	c := Credential{
		Version: 3,
		Subject: "CN=gopher",
	}

	// The wrapper replaces the inner tag entirely; the two timestamp fields
	// differ only by their declared context tags.
	fmt.Println(asn1types.MustTagOf(c.NotBefore))
	fmt.Println(asn1types.MustTagOf(c.NotAfter))
	fmt.Println(c)

	// Output:
	// CONTEXT 0
	// CONTEXT 1
	// (CN=gopher/v3)
}

func ExampleExplicit() {
	// An explicit wrapper layers its tag on top of the inner one, so the
	// payload stays visibly an IA5String inside its wrapper.
	wrapped := asn1types.Explicit[asn1types.Context5, asn1types.IA5String]{Value: "mail@example.net"}

	inner, err := wrapped.InnerTag()
	if err != nil {
		panic(err)
	}
	fmt.Println(wrapped.AsnTag())
	fmt.Println(inner)

	// Output:
	// CONTEXT 5
	// IA5String
}

func ExampleChoice() {
	serial := 7
	id := CredentialID{Serial: &serial}

	// A CHOICE has no single wire identity; its declared tag is the
	// reserved sentinel, telling engines to look at the active alternative.
	fmt.Println(asn1types.MustTagOf(id))
	fmt.Println(asn1types.MustTagOf(*id.Serial))

	// Output:
	// END-OF-CONTENTS
	// INTEGER
}

func ExampleSetOf() {
	// Tag identity follows the container kind: the same element type
	// resolves to SET in a SetOf and SEQUENCE in a slice.
	fmt.Println(asn1types.MustTagOf(asn1types.NewSetOf(1, 2, 3)))
	fmt.Println(asn1types.MustTagOf([]int{1, 2, 3}))

	// Output:
	// SET
	// SEQUENCE
}

func ExampleOptional() {
	// Absence is a property of the value; the tag belongs to the type.
	present := asn1types.Some(42)
	absent := asn1types.None[int]()

	fmt.Println(present.AsnTag(), present.IsPresent())
	fmt.Println(absent.AsnTag(), absent.IsPresent())

	// Output:
	// INTEGER true
	// INTEGER false
}

func ExampleRegisterInstanceType() {
	// The init function above paired this identifier with Credential.
	id := asn1types.MustObjectIdentifier(1, 3, 6, 1, 4, 1, 42, 1)

	v, ok := asn1types.NewInstanceValue(id)
	fmt.Printf("known=%t type=%T\n", ok, v)

	// Output:
	// known=true type=*asn1types_test.Credential
}
