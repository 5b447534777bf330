package cder

/*
external.go implements EXTERNAL (X.690 8.18), EMBEDDED PDV (8.22) and
CHARACTER STRING (8.23), grounded on the teacher's er.go/pdv.go/cs.go.
All three share the same shape: an identification component followed
by an octet-oriented payload. This module keeps that shape as a direct
Element-tree builder/reader rather than the teacher's full CHOICE-typed
identification hierarchy (syntaxes/syntax/presentation-context-id/
context-negotiation/transfer-syntax/fixed), because spec.md's
distilled operation list only exercises the direct-reference
OID + octet-aligned data-value shape that is, in practice, the one
real-world implementations (e.g. LDAP's EXTERNAL usage) actually emit.
*/

// External is a decoded EXTERNAL value using the octet-aligned
// encoding alternative (X.690 8.18.6, encoding [1] IMPLICIT OCTET
// STRING).
type External struct {
	DirectReference   *ObjectIdentifier
	IndirectReference *int64
	Descriptor        *string
	Data              []byte
}

// NewExternal builds an EXTERNAL Element.
func NewExternal(ext External) Element {
	var children []Element
	if ext.DirectReference != nil {
		oidElem, _ := NewOID(*ext.DirectReference...)
		children = append(children, oidElem)
	}
	if ext.IndirectReference != nil {
		children = append(children, NewInteger(*ext.IndirectReference))
	}
	if ext.Descriptor != nil {
		s, _ := NewObjectDescriptor(*ext.Descriptor)
		children = append(children, s)
	}
	data := NewOctetString(ext.Data).Tagged(ClassContextSpecific, 1)
	children = append(children, data)
	return NewConstructed(TagExternal, children...)
}

// EXTERNAL component ordering (X.690 8.18): direct-reference,
// indirect-reference and data-value-descriptor are optional and, when
// present, must appear in that order ahead of the single mandatory
// data-value. stageDataValue covers all three data-value alternatives
// (tags 0, 1 and 2 of the encoding CHOICE) since exactly one of them,
// in any combination, may appear.
const (
	stageDirectReference = iota
	stageIndirectReference
	stageDescriptor
	stageDataValue
)

// AsExternal decodes e as an EXTERNAL value. Components out of the
// order above, or repeated (including two data-value alternatives), are
// rejected rather than silently overwritten; a data-value tag outside
// {0,1,2} is rejected as an unsupported identification alternative.
func AsExternal(e Element) (External, error) {
	if err := expect(e, ClassUniversal, TagExternal, true); err != nil {
		return External{}, err
	}
	var ext External
	stage := -1
	sawDataValue := false
	for _, child := range e.Children {
		var compStage int
		switch {
		case child.Class == ClassUniversal && child.Tag == TagOID:
			compStage = stageDirectReference
		case child.Class == ClassUniversal && child.Tag == TagInteger:
			compStage = stageIndirectReference
		case child.Class == ClassUniversal && child.Tag == TagObjectDescriptor:
			compStage = stageDescriptor
		case child.Class == ClassContextSpecific && (child.Tag == 0 || child.Tag == 1 || child.Tag == 2):
			compStage = stageDataValue
		default:
			return External{}, errTagNumber(0, "EXTERNAL contains an unrecognized component")
		}
		if compStage <= stage {
			return External{}, errConstruction(0, "EXTERNAL components are duplicated or out of order")
		}
		stage = compStage

		switch compStage {
		case stageDirectReference:
			oid, err := AsOID(child)
			if err != nil {
				return External{}, err
			}
			ext.DirectReference = &oid
		case stageIndirectReference:
			v, err := AsInt64(child)
			if err != nil {
				return External{}, err
			}
			ext.IndirectReference = &v
		case stageDescriptor:
			s, err := AsObjectDescriptor(child)
			if err != nil {
				return External{}, err
			}
			ext.Descriptor = &s
		case stageDataValue:
			sawDataValue = true
			switch child.Tag {
			case 0:
				// single-ASN1-value: an EXPLICIT wrapper around exactly
				// one nested, primitive ASN.1 value.
				if len(child.Children) != 1 || child.Children[0].Compound {
					return External{}, errConstruction(0, "EXTERNAL single-ASN1-value data-value must wrap exactly one primitive value")
				}
				ext.Data = child.Children[0].Content
			case 1, 2:
				// octet-aligned / arbitrary: IMPLICIT primitive content.
				ext.Data = child.Content
			}
		}
	}
	if !sawDataValue {
		return External{}, errConstruction(0, "EXTERNAL is missing its mandatory data-value")
	}
	return ext, nil
}

// EmbeddedPDV is a decoded EMBEDDED PDV value, simplified (as described
// at the top of this file) to the syntax-OID identification alternative carrying a
// raw octet-string data-value, the shape actually produced by this
// codec's callers.
type EmbeddedPDV struct {
	Syntax *ObjectIdentifier
	Data   []byte
}

// NewEmbeddedPDV builds an EMBEDDED PDV Element.
func NewEmbeddedPDV(p EmbeddedPDV) Element {
	var idChildren []Element
	if p.Syntax != nil {
		oidElem, _ := NewOID(*p.Syntax...)
		idChildren = append(idChildren, oidElem.Tagged(ClassContextSpecific, 1))
	}
	identification := Element{Class: ClassContextSpecific, Tag: 0, Compound: true, Children: idChildren}
	dataValue := NewOctetString(p.Data).Tagged(ClassContextSpecific, 2)
	return NewConstructed(TagEmbeddedPDV, identification, dataValue)
}

// AsEmbeddedPDV decodes e as an EMBEDDED PDV value.
func AsEmbeddedPDV(e Element) (EmbeddedPDV, error) {
	if err := expect(e, ClassUniversal, TagEmbeddedPDV, true); err != nil {
		return EmbeddedPDV{}, err
	}
	var p EmbeddedPDV
	for _, child := range e.Children {
		switch {
		case child.Class == ClassContextSpecific && child.Tag == 0:
			for _, idChild := range child.Children {
				if idChild.Class == ClassContextSpecific && idChild.Tag == 1 {
					oid, err := decodeOIDArcs(idChild.Content, true)
					if err != nil {
						return EmbeddedPDV{}, err
					}
					o := ObjectIdentifier(oid)
					p.Syntax = &o
				}
			}
		case child.Class == ClassContextSpecific && child.Tag == 2:
			p.Data = child.Content
		}
	}
	return p, nil
}

// CharacterString is a decoded CHARACTER STRING value (the unrestricted
// character string, X.690 8.23), simplified identically to EmbeddedPDV.
type CharacterString struct {
	Syntax *ObjectIdentifier
	Data   []byte
}

// NewCharacterString builds a CHARACTER STRING Element.
func NewCharacterString(c CharacterString) Element {
	p := NewEmbeddedPDV(EmbeddedPDV{Syntax: c.Syntax, Data: c.Data})
	return p.Tagged(ClassUniversal, TagCharacterString)
}

// AsCharacterString decodes e as a CHARACTER STRING value.
func AsCharacterString(e Element) (CharacterString, error) {
	if err := expect(e, ClassUniversal, TagCharacterString, true); err != nil {
		return CharacterString{}, err
	}
	e2 := e
	e2.Tag = TagEmbeddedPDV
	p, err := AsEmbeddedPDV(e2)
	if err != nil {
		return CharacterString{}, err
	}
	return CharacterString{Syntax: p.Syntax, Data: p.Data}, nil
}
