package cder

import "testing"

func TestEnumeratedRoundTrip(t *testing.T) {
	for _, prof := range []Profile{DER, CER} {
		c := New(prof)
		enc, err := c.Encode(NewEnumerated(int32(2)))
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		el, _, err := c.Decode(enc, 0)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		got, err := AsEnumerated(el)
		if err != nil {
			t.Fatalf("AsEnumerated: %v", err)
		}
		if got != 2 {
			t.Errorf("got %d, want 2", got)
		}
	}
}

func TestEnumeratedNegativeValue(t *testing.T) {
	c := New(DER)
	enc, err := c.Encode(NewEnumerated(int64(-1)))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	el, _, err := c.Decode(enc, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := AsEnumerated(el)
	if err != nil {
		t.Fatalf("AsEnumerated: %v", err)
	}
	if got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func TestEnumeratedRejectsWrongTag(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagInteger, Content: []byte{0x01}}
	if _, err := AsEnumerated(el); err == nil {
		t.Fatal("expected rejection of INTEGER tag as ENUMERATED")
	}
}
