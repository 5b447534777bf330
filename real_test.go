package cder

import (
	"math"
	"testing"
)

func TestRealRoundTrip(t *testing.T) {
	c := New(DER)
	for _, v := range []float64{0.0, 1.0, -1.0, 0.5, 3.25, -17.0, 1e10, 1.0 / 3.0} {
		enc, err := c.Encode(c.NewReal(v))
		if err != nil {
			t.Fatalf("v=%v: encode: %v", v, err)
		}
		el, _, err := c.Decode(enc, 0)
		if err != nil {
			t.Fatalf("v=%v: decode: %v", v, err)
		}
		r, err := c.AsReal(el)
		if err != nil {
			t.Fatalf("v=%v: AsReal: %v", v, err)
		}
		if r.Float() != v {
			t.Errorf("got %v, want %v", r.Float(), v)
		}
	}
}

func TestRealRoundTripBase8And16(t *testing.T) {
	for _, base := range []RealBase{RealBase8, RealBase16} {
		c := New(DER, WithRealBase(base))
		for _, v := range []float64{1.0, -1.0, 0.5, 3.25, -17.0, 1e10, 1.0 / 3.0} {
			enc, err := c.Encode(c.NewReal(v))
			if err != nil {
				t.Fatalf("base=%v v=%v: encode: %v", base, v, err)
			}
			el, _, err := c.Decode(enc, 0)
			if err != nil {
				t.Fatalf("base=%v v=%v: decode: %v", base, v, err)
			}
			r, err := c.AsReal(el)
			if err != nil {
				t.Fatalf("base=%v v=%v: AsReal: %v", base, v, err)
			}
			if r.Float() != v {
				t.Errorf("base=%v: got %v, want %v", base, r.Float(), v)
			}
		}
	}
}

func TestRealDecimalRoundTripDER(t *testing.T) {
	c := New(DER, WithRealBase(RealBase10))
	for _, v := range []float64{1.0, -1.0, 0.5, 3.25, -17.0, 1e10, 1.0 / 3.0, 100.0} {
		enc, err := c.Encode(c.NewReal(v))
		if err != nil {
			t.Fatalf("v=%v: encode: %v", v, err)
		}
		el, _, err := c.Decode(enc, 0)
		if err != nil {
			t.Fatalf("v=%v: decode: %v", v, err)
		}
		r, err := c.AsReal(el)
		if err != nil {
			t.Fatalf("v=%v: AsReal: %v", v, err)
		}
		if r.Float() != v {
			t.Errorf("got %v, want %v", r.Float(), v)
		}
	}
}

func TestRealDecimalRoundTripCER(t *testing.T) {
	// NewReal always emits strict NR3, which CER accepts.
	c := New(CER, WithRealBase(RealBase10))
	enc, err := c.Encode(c.NewReal(12.5))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	el, _, err := c.Decode(enc, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, err := c.AsReal(el)
	if err != nil {
		t.Fatalf("AsReal: %v", err)
	}
	if r.Float() != 12.5 {
		t.Errorf("got %v, want 12.5", r.Float())
	}
}

func TestRealCERRejectsNR1(t *testing.T) {
	c := New(CER)
	el := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte{0x01, '1', '2', '3'}}
	if _, err := c.AsReal(el); err == nil {
		t.Fatal("expected CER to reject a decimal NR1 REAL")
	}
}

func TestRealDERAcceptsNR1AndNR2(t *testing.T) {
	c := New(DER)
	nr1 := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte{0x01, '-', '4', '2'}}
	r, err := c.AsReal(nr1)
	if err != nil {
		t.Fatalf("AsReal NR1: %v", err)
	}
	if r.Float() != -42 {
		t.Errorf("got %v, want -42", r.Float())
	}
	nr2 := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte{0x02, '3', '.', '1', '4'}}
	r2, err := c.AsReal(nr2)
	if err != nil {
		t.Fatalf("AsReal NR2: %v", err)
	}
	if r2.Float() != 3.14 {
		t.Errorf("got %v, want 3.14", r2.Float())
	}
}

func TestRealRejectsNR3TrailingZeroMantissa(t *testing.T) {
	c := New(CER)
	el := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte("\x0310.E+2")}
	if _, err := c.AsReal(el); err == nil {
		t.Fatal("expected rejection of NR3 mantissa with a trailing zero")
	}
}

func TestRealRejectsNR3NonPlusZeroExponent(t *testing.T) {
	c := New(CER)
	el := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte("\x031.E0")}
	if _, err := c.AsReal(el); err == nil {
		t.Fatal("expected rejection of a zero NR3 exponent missing its '+' sign")
	}
}

func TestRealSpecialValues(t *testing.T) {
	c := New(DER)
	cases := []struct {
		v    float64
		want Special
	}{
		{math.Inf(1), PlusInfinity},
		{math.Inf(-1), MinusInfinity},
		{math.NaN(), NotANumber},
		{math.Copysign(0, -1), MinusZero},
		{0, NotSpecial},
	}
	for _, tc := range cases {
		enc, err := c.Encode(c.NewReal(tc.v))
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		el, _, err := c.Decode(enc, 0)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		r, err := c.AsReal(el)
		if err != nil {
			t.Fatalf("AsReal: %v", err)
		}
		if r.Special != tc.want {
			t.Errorf("v=%v: got Special=%v, want %v", tc.v, r.Special, tc.want)
		}
	}
}

func TestRealRejectsReservedBase(t *testing.T) {
	c := New(DER)
	// first octet: 1 0 11 00 00 -> binary form, base field = 11 (reserved)
	el := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte{0b10110000, 0x01, 0x01}}
	if _, err := c.AsReal(el); err == nil {
		t.Fatal("expected rejection of the reserved REAL base field")
	}
}

func TestRealRejectsNonMinimalMantissa(t *testing.T) {
	c := New(DER)
	// base 2, scale 0, 1-octet exponent, mantissa 0x02 (even, non-minimal).
	el := Element{Class: ClassUniversal, Tag: TagReal, Content: []byte{0x80, 0x00, 0x02}}
	if _, err := c.AsReal(el); err == nil {
		t.Fatal("expected rejection of non-minimal (even) REAL mantissa")
	}
}
