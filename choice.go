package cder

/*
choice.go implements CHOICE resolution, grounded on the teacher's
choice.go. Since a CHOICE is identified purely by its alternative's own
tag, and Element already carries Class/Tag, resolving a CHOICE is a
lookup against a caller-supplied alternative table rather than a
distinct wire format of its own (X.690 has no CHOICE-specific framing).
*/

// Alternative names one leg of a CHOICE: the class/tag that identifies
// it on the wire.
type Alternative struct {
	Name  string
	Class int
	Tag   int
}

// ResolveChoice returns the name of the Alternative in alts matching
// e's class/tag, or an error if none match (or more than one
// Alternative shares the same class/tag, which is a caller
// programming error, not a decode-time ambiguity).
func ResolveChoice(e Element, alts []Alternative) (string, error) {
	matched := ""
	count := 0
	for _, a := range alts {
		if a.Class == e.Class && a.Tag == e.Tag {
			matched = a.Name
			count++
		}
	}
	switch count {
	case 0:
		return "", errTagNumber(0, "no CHOICE alternative matches class/tag "+itoa(e.Class)+"/"+itoa(e.Tag))
	case 1:
		return matched, nil
	default:
		return "", errConstruction(0, "ambiguous CHOICE: multiple alternatives share the same class/tag")
	}
}
