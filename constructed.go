package cder

import "bytes"

/*
constructed.go implements SEQUENCE, SEQUENCE OF, SET and SET OF (X.690
8.9-8.12), grounded on the teacher's seq.go/set.go. The DER SET OF
canonical-ordering rule is this module's resolution of spec.md's Open
Question: X.690 11.6 requires a DER SET OF's elements be sorted by
their encoded bytes; CER carries no such requirement (9.3 only
constrains SET's *component* ordering, by tag, which SET OF has no
equivalent of, having a single repeated component type).
*/

// NewSequence builds a SEQUENCE Element from its members in order.
func NewSequence(members ...Element) Element {
	return NewConstructed(TagSequence, members...)
}

// AsSequence decodes e as a SEQUENCE, returning its members in order.
func AsSequence(e Element) ([]Element, error) {
	if err := expect(e, ClassUniversal, TagSequence, true); err != nil {
		return nil, err
	}
	return e.Children, nil
}

// NewSet builds a SET Element from its members.
func NewSet(members ...Element) Element {
	return NewConstructed(TagSet, members...)
}

// AsSet decodes e as a SET, returning its members.
func AsSet(e Element) ([]Element, error) {
	if err := expect(e, ClassUniversal, TagSet, true); err != nil {
		return nil, err
	}
	return e.Children, nil
}

// NewSetOf builds a SET OF Element from a homogeneous member slice.
// Under DER the members are sorted into canonical order (X.690 11.6:
// ascending order of their own encoded octets); under CER they are
// encoded in the order given.
func (c *Codec) NewSetOf(members []Element) (Element, error) {
	encoded := make([][]byte, len(members))
	for i, m := range members {
		b, err := c.Encode(m)
		if err != nil {
			return Element{}, err
		}
		encoded[i] = b
	}
	if c.profile == DER {
		order := make([]int, len(members))
		for i := range order {
			order[i] = i
		}
		sortIndicesByBytes(order, encoded)
		sorted := make([]Element, len(members))
		for i, idx := range order {
			sorted[i] = members[idx]
		}
		members = sorted
	}
	return NewConstructed(TagSet, members...), nil
}

func sortIndicesByBytes(order []int, encoded [][]byte) {
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && bytes.Compare(encoded[order[j-1]], encoded[order[j]]) > 0; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
}

// AsSetOf decodes e as a SET OF, additionally enforcing, under DER,
// that its members already appear in canonical (ascending encoded-byte)
// order — a DER SET OF with members out of order is rejected rather
// than silently re-sorted on read.
func (c *Codec) AsSetOf(e Element) ([]Element, error) {
	if err := expect(e, ClassUniversal, TagSet, true); err != nil {
		return nil, err
	}
	if c.profile == DER && len(e.Children) > 1 {
		var prev []byte
		for _, child := range e.Children {
			enc, err := c.Encode(child)
			if err != nil {
				return nil, err
			}
			if prev != nil && bytes.Compare(prev, enc) > 0 {
				return nil, errValuePadding(0, "DER SET OF members are not in canonical ascending order")
			}
			prev = enc
		}
	}
	return e.Children, nil
}
