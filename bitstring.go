package cder

/*
bitstring.go implements BIT STRING (X.690 8.6), grounded on the
teacher's bs.go BitString type. Segmentation above the 1000-bit CER
threshold is handled generically by segment.go; this file only owns
the value-level canonical check (unused-bits count in range, and the
unused padding bits themselves must be zero).
*/

// BitString is a sequence of bits with an explicit bit length (which
// need not be a multiple of 8).
type BitString struct {
	Bytes     []byte
	BitLength int
}

// NewBitString builds a BIT STRING Element.
func NewBitString(b BitString) Element {
	unused := 0
	if n := b.BitLength % 8; n != 0 {
		unused = 8 - n
	}
	content := append([]byte{byte(unused)}, b.Bytes...)
	return NewPrimitive(TagBitString, content)
}

// AsBitString decodes e as a BIT STRING, rejecting an unused-bits
// count outside 0-7 and any nonzero padding bit, both of which X.690
// requires to be zero in canonical encodings (8.6.2.2, 11.2.1).
func AsBitString(e Element) (BitString, error) {
	if err := expect(e, ClassUniversal, TagBitString, false); err != nil {
		return BitString{}, err
	}
	content := e.Content
	if len(content) == 0 {
		return BitString{}, errValueSize(0, "BIT STRING content must not be empty")
	}
	unused := int(content[0])
	if unused > 7 {
		return BitString{}, errValueSize(0, "BIT STRING unused-bits count must be 0-7")
	}
	data := content[1:]
	if len(data) == 0 && unused != 0 {
		return BitString{}, errValuePadding(0, "unused-bits count must be 0 for empty BIT STRING")
	}
	if unused > 0 {
		mask := byte(1<<unused) - 1
		if data[len(data)-1]&mask != 0 {
			return BitString{}, errValuePadding(0, "unused padding bits must be zero")
		}
	}
	return BitString{Bytes: data, BitLength: len(data)*8 - unused}, nil
}
