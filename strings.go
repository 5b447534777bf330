package cder

import (
	"unicode/utf16"
	"unicode/utf8"
)

/*
strings.go implements the restricted character string types (X.690
8.20, via X.680's per-type character repertoires), grounded on the
teacher's per-type files (ia5.go, ns.go, ps.go, vs.go, utf8.go, us.go,
t61.go, gs.go, vts.go, gen.go) but collapsed into one table-driven
implementation: each 8-bit-unit type differs only in its allowed
character set, captured in stringKind below; the wider-unit BMPString
and UniversalString have their own builder/reader functions. CER
segmentation (octet-, BMPString-, or UniversalString-unit based)
applies transparently through Encode/Decode via segment.go.
*/

type stringKind struct {
	tag      int
	validate func(s string) error
}

// NumericString: digits and space.
func validateNumeric(s string) error {
	for _, r := range s {
		if !(r >= '0' && r <= '9') && r != ' ' {
			return errValueCharacters(0, "NumericString contains a non-numeric character")
		}
	}
	return nil
}

// PrintableString: X.680 41.4.
func validatePrintable(s string) error {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case cntns(" '()+,-./:=?", string(r)):
		default:
			return errValueCharacters(0, "PrintableString contains a disallowed character")
		}
	}
	return nil
}

// IA5String: the full 7-bit IA5 (ASCII) repertoire.
func validateIA5(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return errValueCharacters(0, "IA5String contains a non-ASCII octet")
		}
	}
	return nil
}

// VisibleString / ISO646String: printable ASCII 0x20-0x7E.
func validateVisible(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return errValueCharacters(0, "VisibleString contains a non-printable-ASCII octet")
		}
	}
	return nil
}

func validateUTF8(s string) error {
	if !utf8.ValidString(s) {
		return errValueCharacters(0, "UTF8String is not valid UTF-8")
	}
	return nil
}

// any octet string is legal content for these permissive 8-bit
// repertoires; this codec does not attempt to enforce their full
// (often registry-defined) character tables.
func validateAny(s string) error { return nil }

var stringKinds = map[int]stringKind{
	TagNumericString:    {TagNumericString, validateNumeric},
	TagPrintableString:  {TagPrintableString, validatePrintable},
	TagIA5String:        {TagIA5String, validateIA5},
	TagVisibleString:    {TagVisibleString, validateVisible},
	TagUTF8String:       {TagUTF8String, validateUTF8},
	TagT61String:        {TagT61String, validateAny},
	TagVideotexString:   {TagVideotexString, validateAny},
	TagGraphicString:    {TagGraphicString, validateAny},
	TagGeneralString:    {TagGeneralString, validateAny},
	TagObjectDescriptor: {TagObjectDescriptor, validateAny},
}

// NewRestrictedString builds an Element for any of the 8-bit-unit
// restricted character string types (everything except BMPString and
// UniversalString, which use wider code units — see below).
func NewRestrictedString(tag int, s string) (Element, error) {
	k, ok := stringKinds[tag]
	if !ok {
		return Element{}, errTagNumber(0, "not an 8-bit restricted character string tag")
	}
	if err := k.validate(s); err != nil {
		return Element{}, err
	}
	return NewPrimitive(tag, []byte(s)), nil
}

// AsRestrictedString decodes e as any of the 8-bit-unit restricted
// character string types.
func AsRestrictedString(e Element) (string, error) {
	k, ok := stringKinds[e.Tag]
	if !ok {
		return "", errTagNumber(0, "not an 8-bit restricted character string tag")
	}
	if err := expect(e, ClassUniversal, e.Tag, false); err != nil {
		return "", err
	}
	s := string(e.Content)
	if err := k.validate(s); err != nil {
		return "", err
	}
	return s, nil
}

// NewObjectDescriptor builds an ObjectDescriptor Element (X.690 8.9):
// a GraphicString-content value, subject to the same CER segmentation
// threshold as the other 8-bit restricted strings.
func NewObjectDescriptor(s string) (Element, error) {
	return NewRestrictedString(TagObjectDescriptor, s)
}

// AsObjectDescriptor decodes e as an ObjectDescriptor.
func AsObjectDescriptor(e Element) (string, error) {
	if err := expect(e, ClassUniversal, TagObjectDescriptor, false); err != nil {
		return "", err
	}
	return AsRestrictedString(e)
}

// NewBMPString builds a BMPString Element (UTF-16BE code units, X.690
// 8.23/43.3).
func NewBMPString(s string) Element {
	units := utf16.Encode([]rune(s))
	content := make([]byte, len(units)*2)
	for i, u := range units {
		content[2*i] = byte(u >> 8)
		content[2*i+1] = byte(u)
	}
	return NewPrimitive(TagBMPString, content)
}

// AsBMPString decodes e as a BMPString.
func AsBMPString(e Element) (string, error) {
	if err := expect(e, ClassUniversal, TagBMPString, false); err != nil {
		return "", err
	}
	if len(e.Content)%2 != 0 {
		return "", errValueSize(0, "BMPString content length must be even")
	}
	units := make([]uint16, len(e.Content)/2)
	for i := range units {
		units[i] = uint16(e.Content[2*i])<<8 | uint16(e.Content[2*i+1])
	}
	return string(utf16.Decode(units)), nil
}

// NewUniversalString builds a UniversalString Element (UTF-32BE code
// units, X.690 8.23/43.4).
func NewUniversalString(s string) Element {
	runes := []rune(s)
	content := make([]byte, len(runes)*4)
	for i, r := range runes {
		content[4*i] = byte(r >> 24)
		content[4*i+1] = byte(r >> 16)
		content[4*i+2] = byte(r >> 8)
		content[4*i+3] = byte(r)
	}
	return NewPrimitive(TagUniversalString, content)
}

// AsUniversalString decodes e as a UniversalString.
func AsUniversalString(e Element) (string, error) {
	if err := expect(e, ClassUniversal, TagUniversalString, false); err != nil {
		return "", err
	}
	if len(e.Content)%4 != 0 {
		return "", errValueSize(0, "UniversalString content length must be a multiple of 4")
	}
	runes := make([]rune, len(e.Content)/4)
	for i := range runes {
		o := 4 * i
		runes[i] = rune(uint32(e.Content[o])<<24 | uint32(e.Content[o+1])<<16 | uint32(e.Content[o+2])<<8 | uint32(e.Content[o+3]))
	}
	return string(runes), nil
}
