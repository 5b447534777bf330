package cder

import "testing"

func TestNullRoundTrip(t *testing.T) {
	for _, prof := range []Profile{DER, CER} {
		c := New(prof)
		enc, err := c.Encode(NewNull())
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		el, n, err := c.Decode(enc, 0)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if n != len(enc) {
			t.Fatalf("consumed %d, want %d", n, len(enc))
		}
		if err := AsNull(el); err != nil {
			t.Fatalf("AsNull: %v", err)
		}
	}
}

func TestNullRejectsNonEmptyContent(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagNull, Content: []byte{0x00}}
	if err := AsNull(el); err == nil {
		t.Fatal("expected rejection of non-empty NULL content")
	}
}
