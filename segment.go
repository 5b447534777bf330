package cder

import "bytes"

/*
segment.go implements CER's primitive-segmentation rule (X.690 9.1/9.2):
a primitive value whose natural encoding would exceed a per-type
threshold is instead re-encoded as a constructed, indefinite-length
element whose children are primitive chunks of at most that threshold,
terminated by an end-of-contents sentinel. This generalizes the
teacher's cer_on.go BIT STRING-only segmented read loop
(cerSegmentedBitStringRead[T]) across every segmentable universal type.
*/

// unitCount returns the number of type-native units (bits for BIT
// STRING, 16-bit code units for BMPString, 32-bit code units for
// UniversalString, octets for everything else) represented by content.
func unitCount(tag int, content []byte) int {
	switch tag {
	case TagBitString:
		if len(content) == 0 {
			return 0
		}
		unused := int(content[0])
		return (len(content)-1)*8 - unused
	case TagBMPString:
		return len(content) / 2
	case TagUniversalString:
		return len(content) / 4
	default:
		return len(content)
	}
}

func needsSegmentation(e Element, unit int) bool {
	return unitCount(e.Tag, e.Content) > unit
}

// encodeSegmented writes e's content as a CER segmented construction.
func encodeSegmented(buf *bytes.Buffer, e Element, profile Profile) error {
	chunks, err := splitContent(e.Tag, e.Content, segmentChunkUnit(e.Tag))
	if err != nil {
		return err
	}
	buf.Write(encodeIdentifier(e.Class, e.Tag, true))
	buf.Write(encodeLength(-1, profile))
	for _, chunk := range chunks {
		buf.Write(encodeIdentifier(ClassUniversal, e.Tag, false))
		buf.Write(encodeLength(len(chunk), profile))
		buf.Write(chunk)
	}
	buf.Write([]byte{0x00, 0x00}) // EOC
	return nil
}

func segmentChunkUnit(tag int) int {
	switch tag {
	case TagBitString:
		return cerMaxBitStringBits
	case TagBMPString:
		return cerMaxBMPStringUnits
	case TagUniversalString:
		return cerMaxUniversalUnits
	default:
		return cerMaxPrimitiveOctets
	}
}

// splitContent divides content into chunks of at most maxUnit
// type-native units each, reproducing each chunk in the same
// self-describing wire form (e.g. each BIT STRING chunk carries its
// own leading unused-bits octet, zero for every chunk but the last).
func splitContent(tag int, content []byte, maxUnit int) ([][]byte, error) {
	if tag == TagBitString {
		return splitBitString(content, maxUnit)
	}

	var unitSize int
	switch tag {
	case TagBMPString:
		unitSize = 2
	case TagUniversalString:
		unitSize = 4
	default:
		unitSize = 1
	}
	chunkBytes := maxUnit * unitSize

	var chunks [][]byte
	for off := 0; off < len(content); off += chunkBytes {
		end := off + chunkBytes
		if end > len(content) {
			end = len(content)
		}
		chunks = append(chunks, content[off:end])
	}
	return chunks, nil
}

func splitBitString(content []byte, maxBits int) ([][]byte, error) {
	if len(content) == 0 {
		return nil, errTruncation(0, "empty BIT STRING content")
	}
	unused := int(content[0])
	data := content[1:]
	total := len(data)*8 - unused

	maxBytes := maxBits / 8
	var chunks [][]byte
	remaining := total
	off := 0
	for remaining > 0 {
		take := remaining
		if take > maxBits {
			take = maxBits
		}
		takeBytes := (take + 7) / 8
		if takeBytes > maxBytes && remaining > maxBits {
			takeBytes = maxBytes
		}
		chunkUnused := takeBytes*8 - take
		if chunkUnused < 0 {
			chunkUnused = 0
		}
		chunk := append([]byte{byte(chunkUnused)}, data[off:off+takeBytes]...)
		chunks = append(chunks, chunk)
		off += takeBytes
		remaining -= take
	}
	return chunks, nil
}

// reassembleSegments walks an indefinite-length constructed tlv's
// content, which CER guarantees holds only primitive chunk TLVs
// (followed by the EOC already stripped out by decodeTLV), and
// concatenates their content back into a single logical value.
func reassembleSegments(t tlv, profile Profile, depth, limit int) ([]byte, error) {
	if t.Tag == TagBitString {
		return reassembleBitString(t.Content, profile, depth, limit)
	}

	var out bytes.Buffer
	pos := 0
	for pos < len(t.Content) {
		child, n, err := decodeTLV(t.Content, pos, profile, depth, limit)
		if err != nil {
			return nil, err
		}
		if child.Compound {
			return nil, errConstruction(pos, "segmented chunk must be primitive")
		}
		out.Write(child.Content)
		pos += n
	}
	return out.Bytes(), nil
}

func reassembleBitString(content []byte, profile Profile, depth, limit int) ([]byte, error) {
	var data bytes.Buffer
	lastUnused := 0
	pos := 0
	n := 0
	for pos < len(content) {
		child, consumed, err := decodeTLV(content, pos, profile, depth, limit)
		if err != nil {
			return nil, err
		}
		if child.Compound {
			return nil, errConstruction(pos, "segmented BIT STRING chunk must be primitive")
		}
		if len(child.Content) == 0 {
			return nil, errTruncation(pos, "empty BIT STRING chunk")
		}
		unused := int(child.Content[0])
		chunkBytes := child.Content[1:]
		if n > 0 && lastUnused != 0 {
			return nil, errValuePadding(pos, "only the final BIT STRING chunk may have unused bits")
		}
		data.Write(chunkBytes)
		lastUnused = unused
		pos += consumed
		n++
	}
	out := append([]byte{byte(lastUnused)}, data.Bytes()...)
	return out, nil
}
