package cder

import "bytes"

/*
encode.go implements the Codec's top-level Encode entrypoint: walk an
Element tree, apply CER's primitive-segmentation rule where the
profile and content size call for it, and emit canonical identifier,
length, and content octets.
*/

// Encode serializes e to its canonical wire form under c's profile.
func (c *Codec) Encode(e Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.encodeInto(&buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustEncode is Encode but panics on error, for callers building
// literal, known-valid elements (e.g. in tests or constant tables).
func (c *Codec) MustEncode(e Element) []byte {
	out, err := c.Encode(e)
	if err != nil {
		panic(err)
	}
	return out
}

func (c *Codec) encodeInto(buf *bytes.Buffer, e Element) error {
	if e.Compound {
		return c.encodeConstructed(buf, e)
	}
	return c.encodePrimitive(buf, e)
}

func (c *Codec) encodeConstructed(buf *bytes.Buffer, e Element) error {
	var body bytes.Buffer
	for _, child := range e.Children {
		if err := c.encodeInto(&body, child); err != nil {
			return err
		}
	}
	buf.Write(encodeIdentifier(e.Class, e.Tag, true))
	buf.Write(encodeLength(body.Len(), c.profile))
	buf.Write(body.Bytes())
	return nil
}

// segmentThreshold returns the maximum number of content octets (in
// the segmentation engine's own unit — see segment.go) this Element's
// universal type may carry in one primitive TLV before CER requires it
// be re-encoded as a constructed, indefinite-length sequence of
// chunks. Non-universal-class elements, and elements under DER, are
// never segmented.
func (c *Codec) segmentThreshold(e Element) (unit int, ok bool) {
	if c.profile != CER || e.Class != ClassUniversal {
		return 0, false
	}
	switch e.Tag {
	case TagBitString:
		return cerMaxBitStringBits, true
	case TagOctetString, TagUTF8String, TagNumericString, TagPrintableString,
		TagT61String, TagVideotexString, TagIA5String, TagGraphicString,
		TagVisibleString, TagGeneralString, TagObjectDescriptor:
		return cerMaxPrimitiveOctets, true
	case TagBMPString:
		return cerMaxBMPStringUnits, true
	case TagUniversalString:
		return cerMaxUniversalUnits, true
	}
	return 0, false
}

func (c *Codec) encodePrimitive(buf *bytes.Buffer, e Element) error {
	if unit, ok := c.segmentThreshold(e); ok {
		if needsSegmentation(e, unit) {
			return encodeSegmented(buf, e, c.profile)
		}
	}
	buf.Write(encodeIdentifier(e.Class, e.Tag, false))
	buf.Write(encodeLength(len(e.Content), c.profile))
	buf.Write(e.Content)
	return nil
}
