package asn1types

import "strconv"

// A Class scopes the meaning of a tag number. The four classes are fixed by
// ITU-T X.680 and fit in two bits on the wire, which is also how Tag packs
// them.
type Class uint8

const (
	ClassUniversal   Class = 0b00
	ClassApplication Class = 0b01
	ClassContext     Class = 0b10
	ClassPrivate     Class = 0b11
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContext:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	}
	return "CLASS(" + strconv.Itoa(int(c)) + ")"
}

// A Tag is the (class, number) pair that identifies a value's ASN.1 type on
// the wire. It packs the class into the top two bits of a uint32 and the
// number into the remaining thirty, so that tags are true constants, compare
// by ==, serve as map keys, and order exactly like X.690's canonical class
// order (UNIVERSAL < APPLICATION < CONTEXT < PRIVATE).
//
// A Tag carries no behaviour beyond identity. Matching is structural: two
// tags are the same tag if and only if both coordinates are equal.
type Tag uint32

const (
	classShift = 30
	// MaxTagNumber is the largest tag number a Tag can carry.
	MaxTagNumber = 1<<classShift - 1
)

// NewTag returns the tag with the given class and number.
//
// It panics if number exceeds MaxTagNumber. Tag numbers that large do not
// occur in any published module; hitting the limit indicates corrupt input
// upstream, not a value worth representing.
func NewTag(class Class, number uint32) Tag {
	if number > MaxTagNumber {
		panic("asn1types: tag number " + strconv.FormatUint(uint64(number), 10) + " overflows a Tag")
	}
	return Tag(uint32(class)<<classShift | number)
}

// Class returns the tag's class coordinate.
func (t Tag) Class() Class { return Class(t >> classShift) }

// Number returns the tag's number coordinate.
func (t Tag) Number() uint32 { return uint32(t) & MaxTagNumber }

// Compare orders tags canonically per X.690: first by class (UNIVERSAL,
// APPLICATION, CONTEXT, PRIVATE), then by number. It returns -1, 0, or +1.
//
// The packed representation makes this a plain integer comparison.
func (t Tag) Compare(o Tag) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return +1
	}
	return 0
}

// The Universal-class tag table fixed by X.680. This is a closed enumeration:
// the standard assigns these numbers once, so the library deliberately offers
// no way to extend or alter it.
//
// TagEndOfContents doubles as the sentinel "none" tag declared by types with
// no single wire identity (CHOICE values, Open values). X.690 reserves
// Universal 0 for the end-of-contents octets and never assigns it to a type,
// so the sentinel cannot collide with a genuine type tag.
const (
	TagEndOfContents Tag = iota
	TagBoolean
	TagInteger
	TagBitString
	TagOctetString
	TagNull
	TagObjectIdentifier
	TagObjectDescriptor
	TagExternal
	TagReal
	TagEnumerated
	TagEmbeddedPDV
	TagUTF8String
	TagRelativeOID
	_ // 14 reserved
	_ // 15 reserved
	TagSequence
	TagSet
	TagNumericString
	TagPrintableString
	TagTeletexString
	TagVideotexString
	TagIA5String
	TagUTCTime
	TagGeneralizedTime
	TagGraphicString
	TagVisibleString
	TagGeneralString
	TagUniversalString
	TagCharacterString
	TagBMPString
)

// universalNames maps the assigned Universal tag numbers to the names X.680
// gives them. Consulted by Tag.String only; sparse entries render numerically.
var universalNames = map[uint32]string{
	0:  "END-OF-CONTENTS",
	1:  "BOOLEAN",
	2:  "INTEGER",
	3:  "BIT STRING",
	4:  "OCTET STRING",
	5:  "NULL",
	6:  "OBJECT IDENTIFIER",
	7:  "ObjectDescriptor",
	8:  "EXTERNAL",
	9:  "REAL",
	10: "ENUMERATED",
	11: "EMBEDDED PDV",
	12: "UTF8String",
	13: "RELATIVE-OID",
	16: "SEQUENCE",
	17: "SET",
	18: "NumericString",
	19: "PrintableString",
	20: "TeletexString",
	21: "VideotexString",
	22: "IA5String",
	23: "UTCTime",
	24: "GeneralizedTime",
	25: "GraphicString",
	26: "VisibleString",
	27: "GeneralString",
	28: "UniversalString",
	29: "CHARACTER STRING",
	30: "BMPString",
}

// String renders the tag for diagnostics: named Universal tags render by
// their X.680 name ("SEQUENCE"), everything else by class and number
// ("CONTEXT 5").
func (t Tag) String() string {
	if t.Class() == ClassUniversal {
		if name, ok := universalNames[t.Number()]; ok {
			return name
		}
	}
	return t.Class().String() + " " + strconv.FormatUint(uint64(t.Number()), 10)
}
