package cder

/*
element.go defines Element, the concrete value this package encodes
and decodes to/from wire bytes. Where the teacher models each ASN.1
type as its own struct behind a common PDU/Primitive interface,
Element instead holds every type uniformly as a tagged content/children
node — matching the "one element, many typed accessors" surface spec.md
asks for in its External Interfaces section, and keeping the package
free of the teacher's interface-hierarchy machinery that spec.md's
distilled operation list never actually needs.
*/

// Element is a single decoded (or about-to-be-encoded) ASN.1 element.
// A primitive Element carries its value in Content; a constructed
// Element carries its decoded members in Children and leaves Content
// nil.
type Element struct {
	Class    int
	Tag      int
	Compound bool
	Content  []byte
	Children []Element
}

// NewPrimitive builds a primitive universal-class Element.
func NewPrimitive(tag int, content []byte) Element {
	return Element{Class: ClassUniversal, Tag: tag, Compound: false, Content: content}
}

// NewConstructed builds a constructed universal-class Element.
func NewConstructed(tag int, children ...Element) Element {
	return Element{Class: ClassUniversal, Tag: tag, Compound: true, Children: children}
}

// Tagged returns a copy of e re-tagged under the given class/tag,
// used to apply IMPLICIT or EXPLICIT tagging at the call site.
func (e Element) Tagged(class, tag int) Element {
	e.Class = class
	e.Tag = tag
	return e
}

// Explicit wraps e in an outer constructed Element under class/tag,
// implementing EXPLICIT tagging (X.690 8.14).
func Explicit(class, tag int, e Element) Element {
	return Element{Class: class, Tag: tag, Compound: true, Children: []Element{e}}
}

func (e Element) String() string {
	name := tagNames[e.Tag]
	if e.Class != ClassUniversal {
		name = classNames[e.Class] + " " + itoa(e.Tag)
	} else if name == "" {
		name = "UNIVERSAL " + itoa(e.Tag)
	}
	return name
}
