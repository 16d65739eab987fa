package wire

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextualRoundTripUnsigned(t *testing.T) {
	d := ShareData{ShamirData: []byte{1, 2, 3, 4}}
	buf, err := EncodeTextual(d)
	if err != nil {
		t.Fatalf("EncodeTextual: %v", err)
	}

	if strings.Contains(string(buf), `"signature"`) {
		t.Error("unsigned body should omit the signature field")
	}

	got, err := DecodeTextual(buf)
	if err != nil {
		t.Fatalf("DecodeTextual: %v", err)
	}
	if !bytes.Equal(got.ShamirData, d.ShamirData) {
		t.Errorf("ShamirData = %x, want %x", got.ShamirData, d.ShamirData)
	}
}

func TestTextualRoundTripSigned(t *testing.T) {
	d := ShareData{
		ShamirData: []byte{9, 8, 7},
		Signature:  [][]byte{{1, 1}, {2, 2}, {3}},
		Proof:      []byte{0xaa, 0xbb, 0xcc},
	}
	buf, err := EncodeTextual(d)
	if err != nil {
		t.Fatalf("EncodeTextual: %v", err)
	}

	got, err := DecodeTextual(buf)
	if err != nil {
		t.Fatalf("DecodeTextual: %v", err)
	}
	if len(got.Signature) != 3 {
		t.Fatalf("signature components = %d, want 3", len(got.Signature))
	}
	if !bytes.Equal(got.Proof, d.Proof) {
		t.Errorf("Proof = %x, want %x", got.Proof, d.Proof)
	}
}

func TestDecodeTextualRejectsInvalidBase64(t *testing.T) {
	if _, err := DecodeTextual([]byte(`{"shamir_data":"not-valid-base64!!"}`)); err == nil {
		t.Error("expected error for invalid base64 in shamir_data")
	}
}

func TestDecodeTextualRejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeTextual([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestDecodeTextualRejectsDuplicateKeys(t *testing.T) {
	buf := []byte(`{"shamir_data":"AQID","shamir_data":"BAUG"}`)
	if _, err := DecodeTextual(buf); err == nil {
		t.Error("expected error for duplicate shamir_data key")
	}
}

func TestDecodeTextualRejectsDuplicateKeysAroundNestedValue(t *testing.T) {
	buf := []byte(`{"shamir_data":"AQID","signature":["AQ==","Ag=="],"signature":["Aw=="]}`)
	if _, err := DecodeTextual(buf); err == nil {
		t.Error("expected error for duplicate signature key")
	}
}
