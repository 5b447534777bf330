package cder

/*
options.go carries the codec's only configuration surface. Everything
here is explicit, constructed state threaded through a *Codec value —
there is no package-level mutable equivalent of the teacher's
RealConstraintPhase var, per the Design Note on module-level mutable
preferences.
*/

// Profile selects which X.690 rule set a Codec encodes under. Decoding
// always applies the canonical-form checks for the Codec's Profile;
// there is no public BER profile (SPEC_FULL.md §4.8) since this
// library does not produce, and deliberately does not leniently
// accept, non-canonical BER-legal forms.
type Profile uint8

const (
	DER Profile = iota
	CER
)

func (p Profile) String() string {
	if p == CER {
		return "CER"
	}
	return "DER"
}

// RealBase selects the form Codec.NewReal uses to encode a REAL value:
// binary under base 2, 8 or 16, or the ISO 6093 decimal character form
// (spec.md §6's "REAL base preference (2/8/10/16)").
type RealBase uint8

const (
	RealBase2 RealBase = iota
	RealBase8
	RealBase16
	RealBase10
)

// Codec bundles every configuration knob used by Encode/Decode. A
// Codec is immutable after New returns it and is safe for concurrent
// use by multiple goroutines, since no method ever mutates it.
type Codec struct {
	profile        Profile
	realBase       RealBase
	recursionLimit int
}

// Option configures a Codec at construction time.
type Option func(*Codec)

// WithRealBase sets the base Codec.NewReal uses to encode a REAL
// value: RealBase2/8/16 select binary form, RealBase10 selects the
// ISO 6093 decimal character form.
func WithRealBase(b RealBase) Option {
	return func(c *Codec) { c.realBase = b }
}

// WithRecursionLimit overrides the default nesting-depth limit (5)
// applied to indefinite-length constructions during decode.
func WithRecursionLimit(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.recursionLimit = n
		}
	}
}

// New returns a Codec configured for the given profile.
func New(p Profile, opts ...Option) *Codec {
	c := &Codec{
		profile:        p,
		realBase:       RealBase2,
		recursionLimit: defaultRecursionLimit,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Codec) Profile() Profile { return c.profile }

func (c *Codec) RealBase() RealBase { return c.realBase }

func (c *Codec) RecursionLimit() int { return c.recursionLimit }
