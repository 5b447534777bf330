package cder

import "testing"

func TestBooleanRoundTrip(t *testing.T) {
	for _, prof := range []Profile{DER, CER} {
		c := New(prof)
		for _, v := range []bool{true, false} {
			enc, err := c.Encode(NewBoolean(v))
			if err != nil {
				t.Fatalf("%s: encode: %v", prof, err)
			}
			el, n, err := c.Decode(enc, 0)
			if err != nil {
				t.Fatalf("%s: decode: %v", prof, err)
			}
			if n != len(enc) {
				t.Fatalf("%s: consumed %d, want %d", prof, n, len(enc))
			}
			got, err := AsBoolean(el)
			if err != nil {
				t.Fatalf("%s: AsBoolean: %v", prof, err)
			}
			if got != v {
				t.Errorf("%s: got %v, want %v", prof, got, v)
			}
		}
	}
}

func TestBooleanRejectsNonCanonicalOctet(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagBoolean, Content: []byte{0x01}}
	if _, err := AsBoolean(el); err == nil {
		t.Fatal("expected rejection of non-0x00/0xFF BOOLEAN content")
	} else if cErr, ok := err.(*Error); !ok || cErr.Kind != ValueUndefined {
		t.Fatalf("expected ValueUndefined, got %v", err)
	}
}

func TestBooleanRejectsWrongLength(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagBoolean, Content: []byte{0xFF, 0x00}}
	if _, err := AsBoolean(el); err == nil {
		t.Fatal("expected rejection of multi-octet BOOLEAN content")
	}
}
