package wire

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// textualBody mirrors the original share-data JSON shape: shamir_data is
// always present, signature and proof are omitted (nil) on unsigned shares.
type textualBody struct {
	ShamirData string   `json:"shamir_data"`
	Signature  []string `json:"signature,omitempty"`
	Proof      string   `json:"proof,omitempty"`
}

// EncodeTextual serializes a ShareData body as JSON, base64-encoding
// every binary field individually (shamir_data, each signature
// component, and proof).
func EncodeTextual(d ShareData) ([]byte, error) {
	body := textualBody{
		ShamirData: base64.StdEncoding.EncodeToString(d.ShamirData),
	}
	for _, component := range d.Signature {
		body.Signature = append(body.Signature, base64.StdEncoding.EncodeToString(component))
	}
	if d.Proof != nil {
		body.Proof = base64.StdEncoding.EncodeToString(d.Proof)
	}
	return json.Marshal(body)
}

// DecodeTextual parses a Textual-format share body produced by EncodeTextual.
func DecodeTextual(buf []byte) (ShareData, error) {
	if err := rejectDuplicateKeys(buf); err != nil {
		return ShareData{}, fmt.Errorf("textual share body: %w", err)
	}

	var body textualBody
	if err := json.Unmarshal(buf, &body); err != nil {
		return ShareData{}, fmt.Errorf("textual share body: %w", err)
	}

	shamirData, err := base64.StdEncoding.DecodeString(body.ShamirData)
	if err != nil {
		return ShareData{}, fmt.Errorf("textual share body: shamir_data: %w", err)
	}

	d := ShareData{ShamirData: shamirData}
	for _, s := range body.Signature {
		component, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return ShareData{}, fmt.Errorf("textual share body: signature: %w", err)
		}
		d.Signature = append(d.Signature, component)
	}
	if body.Proof != "" {
		proof, err := base64.StdEncoding.DecodeString(body.Proof)
		if err != nil {
			return ShareData{}, fmt.Errorf("textual share body: proof: %w", err)
		}
		d.Proof = proof
	}
	return d, nil
}

// rejectDuplicateKeys scans the top-level JSON object in buf and returns
// an error if any key appears more than once. encoding/json's Unmarshal
// silently keeps the last occurrence of a repeated key; the share body
// grammar requires duplicate keys to be treated as malformed instead.
func rejectDuplicateKeys(buf []byte) error {
	dec := json.NewDecoder(bytes.NewReader(buf))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object")
	}

	seen := make(map[string]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("malformed object key")
		}
		if seen[key] {
			return fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true

		if err := skipJSONValue(dec); err != nil {
			return err
		}
	}

	_, err = dec.Token() // consume closing '}'
	return err
}

// skipJSONValue consumes the next complete JSON value from dec,
// descending into nested objects/arrays without surfacing their
// contents. Used by rejectDuplicateKeys to step over a field's value
// after checking its key.
func skipJSONValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil // scalar value, nothing more to consume
	}

	for dec.More() {
		if delim == '{' {
			if _, err := dec.Token(); err != nil { // nested key
				return err
			}
		}
		if err := skipJSONValue(dec); err != nil {
			return err
		}
	}

	_, err = dec.Token() // consume closing delim
	return err
}
