package cder

import "testing"

func TestResolveChoice(t *testing.T) {
	alts := []Alternative{
		{Name: "name", Class: ClassUniversal, Tag: TagUTF8String},
		{Name: "count", Class: ClassUniversal, Tag: TagInteger},
	}
	str, err := NewRestrictedString(TagUTF8String, "hi")
	if err != nil {
		t.Fatalf("NewRestrictedString: %v", err)
	}
	enc, err := New(DER).Encode(str)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec, _, err := New(DER).Decode(enc, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	name, err := ResolveChoice(dec, alts)
	if err != nil {
		t.Fatalf("ResolveChoice: %v", err)
	}
	if name != "name" {
		t.Errorf("got %q, want %q", name, "name")
	}
}

func TestResolveChoiceNoMatch(t *testing.T) {
	alts := []Alternative{{Name: "count", Class: ClassUniversal, Tag: TagInteger}}
	e := Element{Class: ClassUniversal, Tag: TagBoolean}
	if _, err := ResolveChoice(e, alts); err == nil {
		t.Fatal("expected rejection when no alternative matches")
	}
}

func TestResolveChoiceAmbiguous(t *testing.T) {
	alts := []Alternative{
		{Name: "a", Class: ClassUniversal, Tag: TagInteger},
		{Name: "b", Class: ClassUniversal, Tag: TagInteger},
	}
	e := Element{Class: ClassUniversal, Tag: TagInteger}
	if _, err := ResolveChoice(e, alts); err == nil {
		t.Fatal("expected rejection of ambiguous CHOICE alternatives")
	}
}
