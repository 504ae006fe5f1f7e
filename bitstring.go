package asn1types

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BitString is an ordered sequence of bits bound to the BIT STRING tag.
//
// Unlike a byte buffer, a BitString's length is counted in bits and trailing
// zero bits are significant: a 12-bit value and a 16-bit value with the same
// set bits are different values. Bits are numbered from zero in ASN.1 order,
// bit 0 being the most significant bit of the first octet.
//
// The zero value is an empty BitString ready to use. Set grows the string as
// needed; fixed-length construction goes through NewBitString or
// BitStringFromBytes.
type BitString struct {
	bits   *bitset.BitSet
	length uint
}

// NewBitString returns a BitString of the given length in bits, all bits
// zero.
func NewBitString(length uint) *BitString {
	return &BitString{bits: bitset.New(length), length: length}
}

// BitStringFromBytes returns a BitString of the given length whose bits are
// read MSB-first from octets. It fails if octets holds fewer than length
// bits; surplus bits in the final octet are ignored.
func BitStringFromBytes(octets []byte, length uint) (*BitString, error) {
	if length > uint(len(octets))*8 {
		return nil, fmt.Errorf("asn1types: bit string length %d exceeds %d octets", length, len(octets))
	}
	b := NewBitString(length)
	for i := uint(0); i < length; i++ {
		if octets[i/8]&(0x80>>(i%8)) != 0 {
			b.bits.Set(i)
		}
	}
	return b, nil
}

func (BitString) AsnTag() Tag { return TagBitString }

// Len returns the length of the string in bits.
func (b BitString) Len() uint { return b.length }

// Count returns the number of set bits.
func (b BitString) Count() uint {
	if b.bits == nil {
		return 0
	}
	return b.bits.Count()
}

// Test reports whether bit i is set. Bits at or beyond Len are zero.
func (b BitString) Test(i uint) bool {
	if b.bits == nil || i >= b.length {
		return false
	}
	return b.bits.Test(i)
}

// Set sets bit i to one, growing the string to length i+1 if needed.
func (b *BitString) Set(i uint) {
	if b.bits == nil {
		b.bits = bitset.New(i + 1)
	}
	b.bits.Set(i)
	if i >= b.length {
		b.length = i + 1
	}
}

// Clear sets bit i to zero. The length never shrinks: clearing the last bit
// leaves a trailing zero, which remains significant.
func (b *BitString) Clear(i uint) {
	if b.bits == nil || i >= b.length {
		return
	}
	b.bits.Clear(i)
}

// Bytes returns the bits packed MSB-first into the minimum number of whole
// octets, surplus bits in the final octet zero. How many of those trailing
// bits are unused is Len's business; prefixing that count on the wire is the
// encoding engine's.
func (b BitString) Bytes() []byte {
	octets := make([]byte, (b.length+7)/8)
	if b.bits == nil {
		return octets
	}
	for i, e := b.bits.NextSet(0); e && i < b.length; i, e = b.bits.NextSet(i + 1) {
		octets[i/8] |= 0x80 >> (i % 8)
	}
	return octets
}

// Equal reports whether two BitStrings have the same length and the same
// bits.
func (b BitString) Equal(o BitString) bool {
	if b.length != o.length {
		return false
	}
	for i := uint(0); i < b.length; i++ {
		if b.Test(i) != o.Test(i) {
			return false
		}
	}
	return true
}

// String renders the bits in order, most significant first: "0110...".
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(int(b.length))
	for i := uint(0); i < b.length; i++ {
		if b.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
