package cder

/*
boolean.go implements BOOLEAN (X.690 8.2, 11.1). Grounded on the
teacher's bool.go, with one gap closed: the teacher's decoder accepts
any nonzero content octet as true (data[0] != 0); under CER/DER the
canonical TRUE encoding is exactly 0xFF and any other nonzero octet
must be rejected, not silently normalized.
*/

// NewBoolean builds a BOOLEAN Element.
func NewBoolean(v bool) Element {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	return NewPrimitive(TagBoolean, []byte{b})
}

// AsBoolean decodes e as a BOOLEAN value.
func AsBoolean(e Element) (bool, error) {
	if err := expect(e, ClassUniversal, TagBoolean, false); err != nil {
		return false, err
	}
	if len(e.Content) != 1 {
		return false, errValueSize(0, "BOOLEAN content must be exactly one octet")
	}
	switch e.Content[0] {
	case 0x00:
		return false, nil
	case 0xFF:
		return true, nil
	default:
		return false, errValueUndefined(0, "BOOLEAN content octet must be 0x00 or 0xFF under canonical rules")
	}
}

// expect is the common tag/class/compound guard used by every typed
// accessor in this package.
func expect(e Element, class, tag int, compound bool) error {
	if e.Class != class {
		return errTagClass(0, "unexpected class for "+tagNames[tag])
	}
	if e.Tag != tag {
		return errTagNumber(0, "unexpected tag number, want "+itoa(tag)+" got "+itoa(e.Tag))
	}
	if e.Compound != compound {
		return errConstruction(0, "unexpected construction form for "+tagNames[tag])
	}
	return nil
}
