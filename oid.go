package asn1types

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidOID reports an arc sequence that violates the global OID
// numbering rules. Construction and parsing failures all wrap it; match
// with errors.Is.
var ErrInvalidOID = errors.New("asn1types: invalid object identifier")

// An ObjectIdentifier is a sequence of non-negative integer arcs naming a
// node of the global OID tree, bound to the OBJECT IDENTIFIER tag.
//
// This is the owned, runtime-constructed form; see ConstOID for the
// compile-time-constant form. Valid identifiers have at least two arcs, a
// first arc of 0, 1, or 2, and a second arc below 40 whenever the first is
// 0 or 1 - the first two arcs are inseparable on the wire, so a lone root
// arc names nothing.
//
// DO NOT mutate an ObjectIdentifier after sharing it; derive subordinate
// identifiers with Child instead.
type ObjectIdentifier []uint32

// NewObjectIdentifier returns the identifier with the given arcs, copied.
// It fails with an error wrapping ErrInvalidOID if the arcs violate the
// numbering rules.
func NewObjectIdentifier(arcs ...uint32) (ObjectIdentifier, error) {
	if err := validateArcs(arcs); err != nil {
		return nil, err
	}
	return ObjectIdentifier(slices.Clone(arcs)), nil
}

// MustObjectIdentifier is like NewObjectIdentifier but panics where it
// errors. Use it for identifiers spelled out in source.
func MustObjectIdentifier(arcs ...uint32) ObjectIdentifier {
	oid, err := NewObjectIdentifier(arcs...)
	if err != nil {
		panic(fmt.Sprintf("asn1types: %v", err))
	}
	return oid
}

// ParseObjectIdentifier parses dotted-decimal text ("1.2.840.113549") into
// an identifier. Malformed text and invalid numbering both fail with an
// error wrapping ErrInvalidOID.
func ParseObjectIdentifier(s string) (ObjectIdentifier, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidOID)
	}
	parts := strings.Split(s, ".")
	arcs := make([]uint32, len(parts))
	for i, part := range parts {
		arc, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: arc %d (%q): %v", ErrInvalidOID, i, part, err)
		}
		arcs[i] = uint32(arc)
	}
	if err := validateArcs(arcs); err != nil {
		return nil, err
	}
	return arcs, nil
}

func validateArcs(arcs []uint32) error {
	if len(arcs) < 2 {
		return fmt.Errorf("%w: need at least two arcs, got %d", ErrInvalidOID, len(arcs))
	}
	if arcs[0] > 2 {
		return fmt.Errorf("%w: first arc must be 0, 1 or 2, got %d", ErrInvalidOID, arcs[0])
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return fmt.Errorf("%w: second arc must be below 40 when the first is %d, got %d", ErrInvalidOID, arcs[0], arcs[1])
	}
	return nil
}

func (oid ObjectIdentifier) AsnTag() Tag { return TagObjectIdentifier }

// Validate reports whether the identifier satisfies the numbering rules.
// Identifiers built by NewObjectIdentifier or ParseObjectIdentifier are
// already valid; Validate serves values assembled by hand or decoded
// elsewhere.
func (oid ObjectIdentifier) Validate() error { return validateArcs(oid) }

// Equal reports arc-wise equality.
func (oid ObjectIdentifier) Equal(o ObjectIdentifier) bool { return slices.Equal(oid, o) }

// Compare orders identifiers arc-wise, lexicographically: a prefix sorts
// before its extensions. It returns -1, 0, or +1.
func (oid ObjectIdentifier) Compare(o ObjectIdentifier) int { return slices.Compare(oid, o) }

// Child returns the subordinate identifier oid.arc. The receiver is never
// aliased: the result is a fresh copy, so deriving several children from
// one parent is safe.
func (oid ObjectIdentifier) Child(arc uint32) ObjectIdentifier {
	child := make(ObjectIdentifier, len(oid)+1)
	copy(child, oid)
	child[len(oid)] = arc
	return child
}

// String renders the identifier in dotted-decimal form.
func (oid ObjectIdentifier) String() string {
	var sb strings.Builder
	for i, arc := range oid {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return sb.String()
}

func (oid ObjectIdentifier) MarshalText() ([]byte, error) {
	return []byte(oid.String()), nil
}

func (oid *ObjectIdentifier) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectIdentifier(string(text))
	if err != nil {
		return err
	}
	*oid = parsed
	return nil
}

// A ConstOID is the compile-time-constant identifier form: dotted-decimal
// text as an untyped-constant-compatible string. It is comparable, usable
// as a map key and in const blocks, and bound to the OBJECT IDENTIFIER tag
// like the owned form.
//
// A ConstOID's text is assumed pre-validated by its author, which is why
// ObjectIdentifier() panics instead of returning an error - a malformed
// constant is a defect in the declaring source, not an input condition.
type ConstOID string

func (c ConstOID) AsnTag() Tag { return TagObjectIdentifier }

// ObjectIdentifier returns the owned form of the constant.
func (c ConstOID) ObjectIdentifier() ObjectIdentifier {
	oid, err := ParseObjectIdentifier(string(c))
	if err != nil {
		panic(fmt.Sprintf("asn1types: malformed ConstOID %q: %v", string(c), err))
	}
	return oid
}

func (c ConstOID) String() string { return string(c) }

// Well-known identifiers. The set is a convenience, not a registry: any
// identifier can be declared as a ConstOID wherever it is needed.
const (
	OIDRSAEncryption    ConstOID = "1.2.840.113549.1.1.1"
	OIDSHA256WithRSA    ConstOID = "1.2.840.113549.1.1.11"
	OIDECPublicKey      ConstOID = "1.2.840.10045.2.1"
	OIDSHA256           ConstOID = "2.16.840.1.101.3.4.2.1"
	OIDCommonName       ConstOID = "2.5.4.3"
	OIDCountryName      ConstOID = "2.5.4.6"
	OIDOrganizationName ConstOID = "2.5.4.10"
)
