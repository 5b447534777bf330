package cder

import (
	"time"
)

/*
timetypes.go implements UTCTime and GeneralizedTime (X.690 11.7, 11.8),
plus the X.680:2015 DATE/TIME-OF-DAY/DATE-TIME/DURATION types the
teacher's time.go and dv.go carry beyond spec.md's distilled type list
(supplemented per SPEC_FULL.md §4.7). CER and DER share the same
canonical time-string rules, so there is no profile parameter here.
*/

const (
	utcTimeLayout  = "060102150405Z"
	genTimeLayout  = "20060102150405Z"
	dateLayout     = "20060102"
	timeOfDayLayout = "150405"
	dateTimeLayout = "20060102T150405"
)

// NewUTCTime builds a UTCTime Element. t is truncated to whole
// seconds and rendered in UTC; canonical UTCTime never carries
// fractional seconds or a non-Z offset (11.8).
func NewUTCTime(t time.Time) Element {
	s := t.UTC().Format(utcTimeLayout)
	return NewPrimitive(TagUTCTime, []byte(s))
}

// AsUTCTime decodes e as a UTCTime, rejecting any form other than the
// exact 13-character YYMMDDHHMMSSZ canonical form.
func AsUTCTime(e Element) (time.Time, error) {
	if err := expect(e, ClassUniversal, TagUTCTime, false); err != nil {
		return time.Time{}, err
	}
	s := string(e.Content)
	if len(s) != 13 || s[12] != 'Z' {
		return time.Time{}, errValueCharacters(0, "UTCTime must be exactly YYMMDDHHMMSSZ")
	}
	t, err := time.Parse(utcTimeLayout, s)
	if err != nil {
		return time.Time{}, errValueCharacters(0, "UTCTime does not parse as YYMMDDHHMMSSZ: "+err.Error())
	}
	return t, nil
}

// NewGeneralizedTime builds a GeneralizedTime Element in canonical
// form: seconds mandatory, fractional seconds only if nonzero and
// without a trailing zero digit, always 'Z'.
func NewGeneralizedTime(t time.Time) Element {
	t = t.UTC()
	s := t.Format(genTimeLayout)
	if ns := t.Nanosecond(); ns != 0 {
		frac := formatFraction(ns)
		s = t.Format("20060102150405") + frac + "Z"
	}
	return NewPrimitive(TagGeneralizedTime, []byte(s))
}

func formatFraction(ns int) string {
	// render nanoseconds as a minimal decimal fraction, stripping
	// trailing zeros (11.7.2's "no trailing zero digit" rule).
	digits := []byte(itoa(ns))
	for len(digits) < 9 {
		digits = append([]byte{'0'}, digits...)
	}
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return "." + string(digits)
}

// AsGeneralizedTime decodes e as a GeneralizedTime, rejecting a
// trailing-zero fractional part, a ',' decimal separator, or a
// non-'Z' offset, all of which X.690 11.7 forbids in canonical form.
func AsGeneralizedTime(e Element) (time.Time, error) {
	if err := expect(e, ClassUniversal, TagGeneralizedTime, false); err != nil {
		return time.Time{}, err
	}
	s := string(e.Content)
	if len(s) < 15 || s[len(s)-1] != 'Z' {
		return time.Time{}, errValueCharacters(0, "GeneralizedTime must end in 'Z' with at least YYYYMMDDHHMMSS")
	}
	body := s[:len(s)-1]
	if cntns(body, ",") {
		return time.Time{}, errValueCharacters(0, "GeneralizedTime must use '.' not ',' for the decimal separator")
	}
	layout := "20060102150405Z"
	if i := idxByte(body, '.'); i >= 0 {
		frac := body[i+1:]
		if len(frac) == 0 || frac[len(frac)-1] == '0' {
			return time.Time{}, errValueCharacters(0, "GeneralizedTime fractional seconds must not have a trailing zero")
		}
		layout = "20060102150405.999999999Z"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, errValueCharacters(0, "GeneralizedTime does not parse: "+err.Error())
	}
	return t, nil
}

func idxByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// NewDate builds a DATE Element (X.680:2015 38.4.1), ISO 8601 basic form YYYYMMDD.
func NewDate(t time.Time) Element {
	return NewPrimitive(TagDate, []byte(t.UTC().Format(dateLayout)))
}

// AsDate decodes e as a DATE.
func AsDate(e Element) (time.Time, error) {
	if err := expect(e, ClassUniversal, TagDate, false); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, string(e.Content))
	if err != nil {
		return time.Time{}, errValueCharacters(0, "DATE does not parse as YYYYMMDD: "+err.Error())
	}
	return t, nil
}

// NewTimeOfDay builds a TIME-OF-DAY Element (X.680:2015 38.4.2), ISO
// 8601 basic form HHMMSS.
func NewTimeOfDay(t time.Time) Element {
	return NewPrimitive(TagTimeOfDay, []byte(t.UTC().Format(timeOfDayLayout)))
}

// AsTimeOfDay decodes e as a TIME-OF-DAY.
func AsTimeOfDay(e Element) (time.Time, error) {
	if err := expect(e, ClassUniversal, TagTimeOfDay, false); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(timeOfDayLayout, string(e.Content))
	if err != nil {
		return time.Time{}, errValueCharacters(0, "TIME-OF-DAY does not parse as HHMMSS: "+err.Error())
	}
	return t, nil
}

// NewDateTime builds a DATE-TIME Element (X.680:2015 38.4.3), ISO 8601
// basic form YYYYMMDDTHHMMSS.
func NewDateTime(t time.Time) Element {
	return NewPrimitive(TagDateTime, []byte(t.UTC().Format(dateTimeLayout)))
}

// AsDateTime decodes e as a DATE-TIME.
func AsDateTime(e Element) (time.Time, error) {
	if err := expect(e, ClassUniversal, TagDateTime, false); err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateTimeLayout, string(e.Content))
	if err != nil {
		return time.Time{}, errValueCharacters(0, "DATE-TIME does not parse as YYYYMMDDTHHMMSS: "+err.Error())
	}
	return t, nil
}

// Duration is a decoded DURATION value (X.680:2015 38.4.4), holding
// the ISO 8601 duration designators directly rather than a single
// fixed-unit count, since a DURATION may legitimately mix years,
// months, days and a time-of-day part.
type Duration struct {
	Years, Months, Days          int
	Hours, Minutes, Seconds      int
}

// NewDuration builds a DURATION Element in ISO 8601 form, e.g. "P1Y2M3DT4H5M6S".
func NewDuration(d Duration) Element {
	s := "P"
	s += durPart(d.Years, "Y") + durPart(d.Months, "M") + durPart(d.Days, "D")
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		s += "T" + durPart(d.Hours, "H") + durPart(d.Minutes, "M") + durPart(d.Seconds, "S")
	}
	return NewPrimitive(TagDuration, []byte(s))
}

func durPart(n int, unit string) string {
	if n == 0 {
		return ""
	}
	return itoa(n) + unit
}

// AsDuration decodes e as a DURATION.
func AsDuration(e Element) (Duration, error) {
	if err := expect(e, ClassUniversal, TagDuration, false); err != nil {
		return Duration{}, err
	}
	s := string(e.Content)
	if len(s) == 0 || s[0] != 'P' {
		return Duration{}, errValueCharacters(0, "DURATION must start with 'P'")
	}
	return parseISODuration(s[1:])
}

func parseISODuration(s string) (Duration, error) {
	var d Duration
	inTime := false
	num := 0
	have := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 'T':
			inTime = true
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
			have = true
		case strInSlice(string(c), []string{"Y", "M", "D", "H", "S"}):
			if !have {
				return Duration{}, errValueCharacters(0, "DURATION designator without a preceding number")
			}
			switch {
			case c == 'Y':
				d.Years = num
			case c == 'M' && !inTime:
				d.Months = num
			case c == 'D':
				d.Days = num
			case c == 'H':
				d.Hours = num
			case c == 'M' && inTime:
				d.Minutes = num
			case c == 'S':
				d.Seconds = num
			}
			num, have = 0, false
		default:
			return Duration{}, errValueCharacters(0, "DURATION contains an unrecognized character")
		}
	}
	return d, nil
}
