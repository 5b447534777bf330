package cder

// octetstring.go implements OCTET STRING (X.690 8.7). It has no value
// constraints of its own beyond length; segment.go handles CER's
// >1000-octet primitive-segmentation rule transparently through
// Encode/Decode.

// NewOctetString builds an OCTET STRING Element.
func NewOctetString(b []byte) Element {
	return NewPrimitive(TagOctetString, b)
}

// AsOctetString decodes e as an OCTET STRING.
func AsOctetString(e Element) ([]byte, error) {
	if err := expect(e, ClassUniversal, TagOctetString, false); err != nil {
		return nil, err
	}
	return e.Content, nil
}
