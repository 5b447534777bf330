package cder

/*
decode.go implements the Codec's top-level Decode/DecodeAll entrypoints,
dispatching a parsed tlv into either a constructed Element (recursing
into children, including CER's segmented-primitive reassembly) or a
primitive Element carrying raw content octets, plus the canonical-form
checks that do not belong to any single value codec.
*/

// Decode parses exactly one element starting at data[offset:] and
// returns it along with the number of octets consumed.
func (c *Codec) Decode(data []byte, offset int) (Element, int, error) {
	return c.decodeAt(data, offset, 0)
}

// DecodeAll parses data as a sequence of zero or more top-level
// elements and returns all of them; it is an error for trailing bytes
// to form a partial element.
func (c *Codec) DecodeAll(data []byte) ([]Element, error) {
	var out []Element
	offset := 0
	for offset < len(data) {
		e, n, err := c.Decode(data, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		offset += n
	}
	return out, nil
}

func (c *Codec) decodeAt(data []byte, offset, depth int) (Element, int, error) {
	t, consumed, err := decodeTLV(data, offset, c.profile, depth, c.recursionLimit)
	if err != nil {
		return Element{}, 0, err
	}

	if t.Compound {
		return c.decodeConstructed(t, offset, depth)
	}
	return c.decodePrimitive(t, offset, depth, consumed)
}

func (c *Codec) decodeConstructed(t tlv, offset, depth int) (Element, int, error) {
	if _, ok := c.segmentThreshold(Element{Class: t.Class, Tag: t.Tag, Compound: true}); ok && t.Length == -1 {
		content, err := reassembleSegments(t, c.profile, depth+1, c.recursionLimit)
		if err != nil {
			return Element{}, 0, err
		}
		return Element{Class: t.Class, Tag: t.Tag, Compound: false, Content: content}, tlvIndefiniteTotal(t), nil
	}

	// only indefinite-length nesting counts toward the recursion limit.
	childDepth := depth
	if t.Length == -1 {
		childDepth = depth + 1
	}
	var children []Element
	pos := 0
	for pos < len(t.Content) {
		child, n, err := c.decodeAt(t.Content, pos, childDepth)
		if err != nil {
			return Element{}, 0, err
		}
		children = append(children, child)
		pos += n
	}
	total := tlvTotalLen(t)
	return Element{Class: t.Class, Tag: t.Tag, Compound: true, Children: children}, total, nil
}

func (c *Codec) decodePrimitive(t tlv, offset, depth, consumed int) (Element, int, error) {
	e := Element{Class: t.Class, Tag: t.Tag, Compound: false, Content: t.Content}
	if unit, ok := c.segmentThreshold(e); ok && needsSegmentation(e, unit) {
		return Element{}, 0, errConstruction(offset, "CER primitive exceeds the segmentation threshold; constructed form required")
	}
	return e, consumed, nil
}

// tlvTotalLen returns how many source octets a fully-parsed tlv
// (definite or indefinite) occupied, for a caller that only has the
// tlv's HeaderLen/Content/Length fields (used once decodeTLV's own
// return value isn't in scope, e.g. inside decodeConstructed).
func tlvTotalLen(t tlv) int {
	if t.Length == -1 {
		return tlvIndefiniteTotal(t)
	}
	return t.HeaderLen + t.Length
}

func tlvIndefiniteTotal(t tlv) int {
	return t.HeaderLen + len(t.Content) + 2 // + EOC
}
