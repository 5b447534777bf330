package cder

/*
tlv.go implements the shared Tag-Length-Value framing used by every
value codec in this package: identifier octet composition (class,
construction bit, short/long-form tag number), length octet composition
(short form, definite long form, and CER's indefinite form), and the
canonical-minimality checks that reject anything BER-legal but not
CER/DER-legal. This is the one place BER and CER/DER framing overlap,
per SPEC_FULL.md §4.8 — tag/length octets do not differ between the
rule sets, only their legality does.
*/

// tlv is the parsed identifier+length header of one encoded element,
// plus a slice into the original buffer holding its content octets.
// Length == -1 marks an indefinite-length (CER-only) construction;
// Content then holds the child TLVs up to, but not including, the EOC
// sentinel.
type tlv struct {
	Class     int
	Tag       int
	Compound  bool
	Length    int
	HeaderLen int
	Content   []byte
}

// encodeIdentifier returns the identifier octet(s) for class/tag/compound.
func encodeIdentifier(class, tag int, compound bool) []byte {
	first := byte(class) << 6
	if compound {
		first |= 0x20
	}
	if tag < 31 {
		return []byte{first | byte(tag)}
	}
	out := []byte{first | 0x1F}
	return append(out, encodeBase128(tag)...)
}

// encodeBase128 encodes n as a base-128 VLQ with continuation bits set
// on every octet but the last, per X.690 8.1.2.4.
func encodeBase128(n int) []byte {
	if n == 0 {
		return []byte{0x00}
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte(n & 0x7F)}, digits...)
		n >>= 7
	}
	for i := 0; i < len(digits)-1; i++ {
		digits[i] |= 0x80
	}
	return digits
}

// decodeBase128 reads a long-form tag number starting at data[0],
// rejecting a leading padding octet (0x80 as the first octet of a
// multi-octet tag is a non-minimal encoding) and tag numbers that
// overflow int. Returns the value and the count of octets consumed.
func decodeBase128(data []byte, offset int) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, errTruncation(offset, "truncated long-form tag number")
	}
	if data[0] == 0x80 {
		return 0, 0, errTagPadding(offset, "long-form tag number has leading padding octet")
	}
	var n int
	i := 0
	for {
		if i >= len(data) {
			return 0, 0, errTruncation(offset, "truncated long-form tag number")
		}
		b := data[i]
		if n > (1<<24) { // generous overflow guard well before int overflow
			return 0, 0, errTagOverflow(offset, "tag number too large")
		}
		n = (n << 7) | int(b&0x7F)
		i++
		if b&0x80 == 0 {
			break
		}
	}
	if n < 31 {
		return 0, 0, errTagPadding(offset, "long-form encoding used for tag number < 31")
	}
	return n, i, nil
}

// decodeIdentifier parses the identifier octet(s) at data[offset:].
func decodeIdentifier(data []byte, offset int) (class, tagNum int, compound bool, consumed int, err error) {
	if offset >= len(data) {
		return 0, 0, false, 0, errTruncation(offset, "truncated identifier octet")
	}
	first := data[offset]
	class = int(first >> 6)
	compound = first&0x20 != 0
	low := int(first & 0x1F)
	if low < 31 {
		return class, low, compound, 1, nil
	}
	n, used, err := decodeBase128(data[offset+1:], offset+1)
	if err != nil {
		return 0, 0, false, 0, err
	}
	return class, n, compound, 1 + used, nil
}

// encodeLength returns the length octets for n (n == -1 means
// indefinite, legal only under CER and only for constructed content).
func encodeLength(n int, profile Profile) []byte {
	if n == -1 {
		return []byte{0x80}
	}
	if n < 0 {
		panic("cder: negative definite length")
	}
	if n < 128 {
		return []byte{byte(n)}
	}
	var octs []byte
	for v := n; v > 0; v >>= 8 {
		octs = append([]byte{byte(v & 0xFF)}, octs...)
	}
	return append([]byte{0x80 | byte(len(octs))}, octs...)
}

// decodeLength parses length octets at data[offset:], enforcing
// canonical minimality: the long form must not use more octets than
// needed to represent the value, and must not itself be represented
// when the value fits in short form. DER additionally rejects the
// indefinite form outright.
func decodeLength(data []byte, offset int, profile Profile) (n int, consumed int, err error) {
	if offset >= len(data) {
		return 0, 0, errTruncation(offset, "truncated length octet")
	}
	first := data[offset]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	numOcts := int(first & 0x7F)
	if numOcts == 0 {
		if profile == DER {
			return 0, 0, errConstruction(offset, "indefinite length prohibited under DER")
		}
		return -1, 1, nil
	}
	if offset+1+numOcts > len(data) {
		return 0, 0, errTruncation(offset, "truncated long-form length")
	}
	body := data[offset+1 : offset+1+numOcts]
	if body[0] == 0x00 && numOcts > 1 {
		return 0, 0, errLengthViolation(offset, "non-minimal long-form length (leading zero octet)")
	}
	var v int
	for _, b := range body {
		v = (v << 8) | int(b)
	}
	if v < 128 {
		return 0, 0, errLengthViolation(offset, "long-form length used where short form suffices")
	}
	minOcts := 1
	for t := v; t > 0xFF; t >>= 8 {
		minOcts++
	}
	if numOcts > minOcts {
		return 0, 0, errLengthViolation(offset, "non-minimal long-form length octet count")
	}
	return v, 1 + numOcts, nil
}

// decodeTLV parses one complete TLV (identifier + length + content) at
// data[offset:]. depth/limit implement the Recursion-limit guard on
// indefinite-length nesting (the teacher's findEOC walks nested
// indefinite content with no such limit — a confirmed gap this module
// closes).
func decodeTLV(data []byte, offset int, profile Profile, depth, limit int) (tlv, int, error) {
	if depth > limit {
		return tlv{}, 0, errRecursion(offset, "indefinite-length nesting exceeds recursion limit")
	}
	class, tagNum, compound, idLen, err := decodeIdentifier(data, offset)
	if err != nil {
		return tlv{}, 0, err
	}
	pos := offset + idLen
	length, lenLen, err := decodeLength(data, pos, profile)
	if err != nil {
		return tlv{}, 0, err
	}
	pos += lenLen

	if length == -1 {
		if !compound {
			return tlv{}, 0, errConstruction(offset, "indefinite length on a primitive element")
		}
		end, err := findEOC(data, pos, profile, depth+1, limit)
		if err != nil {
			return tlv{}, 0, err
		}
		content := data[pos:end]
		total := (end + 2) - offset // content plus the 2-octet EOC
		return tlv{Class: class, Tag: tagNum, Compound: compound, Length: -1, HeaderLen: pos - offset, Content: content}, total, nil
	}

	if pos+length > len(data) {
		return tlv{}, 0, errTruncation(offset, "truncated content octets")
	}
	content := data[pos : pos+length]
	return tlv{Class: class, Tag: tagNum, Compound: compound, Length: length, HeaderLen: pos - offset, Content: content}, (pos + length) - offset, nil
}

// findEOC scans forward from offset, skipping complete nested TLVs
// (recursing into any indefinite-length child up to limit), and
// returns the offset of the 00 00 EOC sentinel that closes the current
// indefinite-length construction.
func findEOC(data []byte, offset int, profile Profile, depth, limit int) (int, error) {
	if depth > limit {
		return 0, errRecursion(offset, "indefinite-length nesting exceeds recursion limit")
	}
	pos := offset
	for {
		if pos+2 <= len(data) && data[pos] == 0x00 && data[pos+1] == 0x00 {
			return pos, nil
		}
		if pos >= len(data) {
			return 0, errTruncation(offset, "missing end-of-contents octets")
		}
		_, consumed, err := decodeTLV(data, pos, profile, depth, limit)
		if err != nil {
			return 0, err
		}
		pos += consumed
	}
}
