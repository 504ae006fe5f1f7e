// Package asn1types is the static type-tagging layer of an ASN.1 data
// model: it associates every representable Go type with the ASN.1 tag
// (class + number, per ITU-T X.680) that identifies it on the wire, and
// lets a program override that tag through composable wrapper types.
//
// Nothing here encodes or decodes bytes. Codec engines (BER, DER, CER)
// consume this contract - they query a type's tag through AsnType or the
// TagOf table and pick repetition strategies with SequenceOfType - and the
// derive facility for user-defined aggregates produces implementations of
// it, usually by embedding Sequence, Set, or Choice. Getting the tag
// contract wrong silently corrupts wire compatibility, which is why the
// binding rules live in one place and everything else depends on them.
//
// Plain Go types participate without ceremony: bool is a BOOLEAN, every
// integer width is an INTEGER, []byte is an OCTET STRING, string is a
// UTF8String, slices and arrays and maps are SEQUENCEs. Re-tagging is a
// type, not a field: Implicit and Explicit bind their tag through a
// zero-sized marker so the override is part of the type's identity.
package asn1types
