package cder

import "math/big"

/*
integer.go implements INTEGER (X.690 8.3), reusing the same wire
codec for ENUMERATED (enumerated.go) since both share an identical
two's-complement minimal-encoding rule and differ only in tag number.
Grounded on the teacher's int.go Integer type, simplified to a single
*big.Int-backed representation (this package has no hot path that
needs the teacher's dual native-int64/big.Int fast path).
*/

// NewInteger builds an INTEGER Element from a native Go integer.
func NewInteger[T interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}](v T) Element {
	return NewPrimitive(TagInteger, encodeTwosComplement(big.NewInt(int64(v))))
}

// NewBigInteger builds an INTEGER Element from an arbitrary-precision value.
func NewBigInteger(v *big.Int) Element {
	return NewPrimitive(TagInteger, encodeTwosComplement(v))
}

// AsBigInt decodes e as an INTEGER, returning its arbitrary-precision value.
func AsBigInt(e Element) (*big.Int, error) {
	if err := expect(e, ClassUniversal, TagInteger, false); err != nil {
		return nil, err
	}
	return decodeTwosComplement(e.Content)
}

// AsInt64 decodes e as an INTEGER and requires it fit in an int64.
func AsInt64(e Element) (int64, error) {
	v, err := AsBigInt(e)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, errValueSize(0, "INTEGER value does not fit in int64")
	}
	return v.Int64(), nil
}

// encodeTwosComplement renders v as the minimal big-endian two's
// complement byte string X.690 requires: the shortest encoding such
// that the first nine bits are not all 0 and not all 1 (unless the
// value is exactly zero, which is a single 0x00 octet).
func encodeTwosComplement(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// negative: two's complement over the minimal bit width, which is
	// the bit length of ^v (== -v-1) plus the sign bit.
	nBits := new(big.Int).Not(v).BitLen() + 1
	nBytes := (nBits + 7) / 8
	mod := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
	twos := new(big.Int).Add(mod, v)
	b := twos.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// decodeTwosComplement parses minimal two's-complement content,
// rejecting any non-minimal (redundant leading octet) encoding.
func decodeTwosComplement(content []byte) (*big.Int, error) {
	if len(content) == 0 {
		return nil, errValueSize(0, "INTEGER content must not be empty")
	}
	if len(content) > 1 {
		first := content[0]
		second := content[1] & 0x80
		if (first == 0x00 && second == 0) || (first == 0xFF && second != 0) {
			return nil, errValuePadding(0, "non-minimal INTEGER encoding")
		}
	}
	v := new(big.Int).SetBytes(content)
	if content[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(content)*8))
		v.Sub(v, mod)
	}
	return v, nil
}
