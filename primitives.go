package asn1types

import (
	"math/big"
	"time"
)

// Transparent aliases for the plain Go types behind the primitive bindings.
// They exist so that declarations read in ASN.1 vocabulary; the TagOf table
// resolves them like the types they name.
type (
	// Utf8String is the UTF-8 text string binding (UTF8String tag).
	Utf8String = string
	// OctetString is the byte-buffer binding (OCTET STRING tag).
	OctetString = []byte
	// Integer is the arbitrary-precision integer binding (INTEGER tag,
	// shared with every fixed-width integer kind).
	Integer = big.Int
)

// Null is the unit value: it carries no content and binds to the NULL tag.
type Null struct{}

func (Null) AsnTag() Tag { return TagNull }

// UTCTime is a calendar timestamp in UTC, bound to the UTCTime tag.
//
// Go has a single clock type where ASN.1 distinguishes two calendar forms,
// so the distinction is carried by defined types: UTCTime for instants
// expressed in UTC, GeneralizedTime for instants with an arbitrary fixed
// offset. A plain time.Time resolves to GeneralizedTime, the general form.
type UTCTime time.Time

func (UTCTime) AsnTag() Tag { return TagUTCTime }

// Time returns the instant as a plain time.Time.
func (t UTCTime) Time() time.Time { return time.Time(t) }

// GeneralizedTime is a calendar timestamp with an arbitrary fixed offset,
// bound to the GeneralizedTime tag.
type GeneralizedTime time.Time

func (GeneralizedTime) AsnTag() Tag { return TagGeneralizedTime }

// Time returns the instant as a plain time.Time.
func (t GeneralizedTime) Time() time.Time { return time.Time(t) }

// The restricted text strings, each carrying its own Universal tag. A plain
// string resolves to UTF8String; converting it to one of these types is all
// it takes to re-bind it. Whether the text actually fits the restricted
// alphabet is a value-validation concern that belongs to the encoding
// engine, not to tag identity.

// IA5String is text restricted to International Alphabet 5 (ASCII).
type IA5String string

func (IA5String) AsnTag() Tag { return TagIA5String }

// NumericString is text restricted to digits and space.
type NumericString string

func (NumericString) AsnTag() Tag { return TagNumericString }

// PrintableString is text restricted to the X.680 printable subset.
type PrintableString string

func (PrintableString) AsnTag() Tag { return TagPrintableString }

// VisibleString is text restricted to visible (printing) ASCII.
type VisibleString string

func (VisibleString) AsnTag() Tag { return TagVisibleString }

// BMPString is text drawn from the Basic Multilingual Plane.
type BMPString string

func (BMPString) AsnTag() Tag { return TagBMPString }

// UniversalString is text drawn from the full universal character set.
type UniversalString string

func (UniversalString) AsnTag() Tag { return TagUniversalString }
