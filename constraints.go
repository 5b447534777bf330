package cder

/*
constraints.go wires golang.org/x/exp/constraints into the one place
this codec needs generic numeric bounds checking, the same role the
teacher gives it in constr_on.go.
*/

import "golang.org/x/exp/constraints"

// fitsInt64 reports whether v (any sized integer or float type) can be
// represented exactly as an int64, used by NewIntegerValue to accept
// any Go numeric type at the call site instead of forcing callers to
// convert manually.
func fitsInt64[T constraints.Integer | constraints.Float](v T) (int64, bool) {
	i := int64(v)
	if T(i) != v || (i < 0) != (v < 0) {
		return 0, false
	}
	return i, true
}

// NewIntegerValue builds an INTEGER Element from any Go integer or
// floating-point value, accepting a float only when it is exactly
// representable as an int64 (no fractional part, no overflow) — the
// bounds check this codec needs golang.org/x/exp/constraints for.
func NewIntegerValue[T constraints.Integer | constraints.Float](v T) (Element, error) {
	i, ok := fitsInt64(v)
	if !ok {
		return Element{}, errValueSize(0, "value does not fit exactly in an int64 INTEGER")
	}
	return NewInteger(i), nil
}
