// Package wire implements the two on-the-wire share body encodings
// (Binary and Textual) and the "K-I-B" share-string grammar that wraps
// them. Binary is a minimal tag-length-varint codec with no reflection,
// in the spirit of the project's other hand-rolled byte-level codecs.
package wire

import (
	"encoding/binary"
	"fmt"
)

// tlvWriter accumulates tagged fields into a single byte buffer.
type tlvWriter struct {
	buf []byte
}

// writeField appends one field as varint(tag) || varint(len(value)) || value.
func (w *tlvWriter) writeField(tag uint64, value []byte) {
	var tagBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tagBuf[:], tag)
	w.buf = append(w.buf, tagBuf[:n]...)

	var lenBuf [binary.MaxVarintLen64]byte
	n = binary.PutUvarint(lenBuf[:], uint64(len(value)))
	w.buf = append(w.buf, lenBuf[:n]...)

	w.buf = append(w.buf, value...)
}

func (w *tlvWriter) bytes() []byte {
	return w.buf
}

// tlvField is one decoded tag/value pair in encounter order.
type tlvField struct {
	tag   uint64
	value []byte
}

// readFields decodes buf into an ordered list of tag/value fields.
func readFields(buf []byte) ([]tlvField, error) {
	var fields []tlvField
	for len(buf) > 0 {
		tag, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, fmt.Errorf("malformed tag varint")
		}
		buf = buf[n:]

		length, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, fmt.Errorf("malformed length varint")
		}
		buf = buf[n:]

		if uint64(len(buf)) < length {
			return nil, fmt.Errorf("field declares length %d but only %d bytes remain", length, len(buf))
		}
		fields = append(fields, tlvField{tag: tag, value: buf[:length]})
		buf = buf[length:]
	}
	return fields, nil
}
