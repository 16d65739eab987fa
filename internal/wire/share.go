package wire

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Format selects which body encoding a share string's base64 block holds.
type Format int

const (
	// Binary encodes the body as tag-length-varint fields.
	Binary Format = iota
	// Textual encodes the body as JSON with base64-encoded binary fields.
	Textual
)

// encodeBody produces the raw byte form that gets base64-wrapped in the
// outer "K-I-B" grammar, using the encoder the given Format selects.
func encodeBody(format Format, d ShareData) ([]byte, error) {
	switch format {
	case Binary:
		return EncodeBinary(d), nil
	case Textual:
		return EncodeTextual(d)
	default:
		return nil, fmt.Errorf("wire: unknown format %d", format)
	}
}

func decodeBody(format Format, buf []byte) (ShareData, error) {
	switch format {
	case Binary:
		return DecodeBinary(buf)
	case Textual:
		return DecodeTextual(buf)
	default:
		return ShareData{}, fmt.Errorf("wire: unknown format %d", format)
	}
}

// FormatShare builds the "K-I-B" share string: K is the threshold, I is the
// share's external index, and B is base64-no-pad of the encoded body.
func FormatShare(threshold, index int, format Format, d ShareData) (string, error) {
	body, err := encodeBody(format, d)
	if err != nil {
		return "", err
	}
	b := base64.RawStdEncoding.EncodeToString(body)
	return fmt.Sprintf("%d-%d-%s", threshold, index, b), nil
}

// ParsedShare is a successfully-parsed share string.
type ParsedShare struct {
	Threshold int
	Index     int
	Data      ShareData
}

// ParseShare splits s into its three hyphen-separated parts, validates
// K and I, base64-decodes the body, and decodes it under format.
func ParseShare(s string, format Format) (ParsedShare, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return ParsedShare{}, fmt.Errorf("expected 3 hyphen-separated parts, found %d", len(parts))
	}

	k, err := strconv.Atoi(parts[0])
	if err != nil {
		return ParsedShare{}, fmt.Errorf("threshold is not a valid integer: %w", err)
	}
	i, err := strconv.Atoi(parts[1])
	if err != nil {
		return ParsedShare{}, fmt.Errorf("index is not a valid integer: %w", err)
	}
	if k < 1 {
		return ParsedShare{}, fmt.Errorf("threshold must be >= 1, found %d", k)
	}
	if i < 1 {
		return ParsedShare{}, fmt.Errorf("index must be >= 1, found %d", i)
	}

	raw, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return ParsedShare{}, fmt.Errorf("base64 decoding of body failed: %w", err)
	}

	d, err := decodeBody(format, raw)
	if err != nil {
		return ParsedShare{}, err
	}

	return ParsedShare{Threshold: k, Index: i, Data: d}, nil
}
