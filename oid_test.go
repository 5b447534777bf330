package cder

import "testing"

func TestOIDRoundTrip(t *testing.T) {
	c := New(DER)
	el, err := NewOID(1, 3, 6, 1, 4, 1, 311)
	if err != nil {
		t.Fatalf("NewOID: %v", err)
	}
	enc, err := c.Encode(el)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec, _, err := c.Decode(enc, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := AsOID(dec)
	if err != nil {
		t.Fatalf("AsOID: %v", err)
	}
	want := "1.3.6.1.4.1.311"
	if got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestOIDRejectsInvalidFirstArc(t *testing.T) {
	if _, err := NewOID(3, 1); err == nil {
		t.Fatal("expected rejection of first arc > 2")
	}
}

func TestOIDRejectsSecondArcOverflow(t *testing.T) {
	if _, err := NewOID(1, 40); err == nil {
		t.Fatal("expected rejection of second arc > 39 when first arc < 2")
	}
}

func TestOIDRejectsLeadingPaddingSubIdentifier(t *testing.T) {
	el := Element{Class: ClassUniversal, Tag: TagOID, Content: []byte{0x2A, 0x80, 0x01}}
	if _, err := AsOID(el); err == nil {
		t.Fatal("expected rejection of a sub-identifier with leading 0x80 padding")
	}
}

func TestRelativeOIDRoundTrip(t *testing.T) {
	c := New(CER)
	el, err := NewRelativeOID(8571, 3, 2)
	if err != nil {
		t.Fatalf("NewRelativeOID: %v", err)
	}
	enc, err := c.Encode(el)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec, _, err := c.Decode(enc, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := AsRelativeOID(dec)
	if err != nil {
		t.Fatalf("AsRelativeOID: %v", err)
	}
	if len(got) != 3 || got[0] != 8571 || got[1] != 3 || got[2] != 2 {
		t.Errorf("got %v", got)
	}
}
