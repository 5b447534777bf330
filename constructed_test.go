package cder

import "testing"

func TestDERSetOfCanonicalOrdering(t *testing.T) {
	c := New(DER)
	members := []Element{NewInteger(300), NewInteger(1), NewInteger(20)}
	el, err := c.NewSetOf(members)
	if err != nil {
		t.Fatalf("NewSetOf: %v", err)
	}
	enc, err := c.Encode(el)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec, _, err := c.Decode(enc, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ordered, err := c.AsSetOf(dec)
	if err != nil {
		t.Fatalf("AsSetOf: %v", err)
	}
	if len(ordered) != 3 {
		t.Fatalf("got %d members, want 3", len(ordered))
	}
	var got []int64
	for _, m := range ordered {
		v, err := AsInt64(m)
		if err != nil {
			t.Fatalf("AsInt64: %v", err)
		}
		got = append(got, v)
	}
	// canonical order is by encoded bytes, not numeric value: 02 01 01
	// (1) < 02 01 14 (20) < 02 02 01 2C (300), the length octet placing
	// the 2-octet INTEGER last.
	if got[0] != 1 || got[1] != 20 || got[2] != 300 {
		t.Fatalf("got %v, want [1 20 300]", got)
	}
}

func TestDERSetOfRejectsOutOfOrderInput(t *testing.T) {
	c := New(DER)
	// construct an out-of-order SET OF by hand, bypassing NewSetOf's sort.
	el := NewConstructed(TagSet, NewInteger(int64(1)), NewInteger(int64(2)))
	enc, err := c.Encode(el)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// swap the two children's encoded bytes to force descending order.
	a, _ := c.Encode(NewInteger(int64(1)))
	b, _ := c.Encode(NewInteger(int64(2)))
	swapped := append(append([]byte{}, enc[:2]...), append(b, a...)...)
	dec, _, err := c.Decode(swapped, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := c.AsSetOf(dec); err == nil {
		t.Fatal("expected rejection of out-of-order DER SET OF")
	}
}
