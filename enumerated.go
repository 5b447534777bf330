package cder

import "math/big"

// ENUMERATED (X.690 8.4) shares INTEGER's minimal two's-complement
// wire encoding and differs only in tag number.

// NewEnumerated builds an ENUMERATED Element from a native Go integer.
func NewEnumerated[T interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}](v T) Element {
	return NewPrimitive(TagEnumerated, encodeTwosComplement(big.NewInt(int64(v))))
}

// AsEnumerated decodes e as an ENUMERATED value.
func AsEnumerated(e Element) (int64, error) {
	if err := expect(e, ClassUniversal, TagEnumerated, false); err != nil {
		return 0, err
	}
	v, err := decodeTwosComplement(e.Content)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, errValueSize(0, "ENUMERATED value does not fit in int64")
	}
	return v.Int64(), nil
}
