package wire

import "fmt"

const (
	bodyTagShamirData = 1
	bodyTagSignature  = 2 // repeated
	bodyTagProof      = 3
)

// EncodeBinary serializes a ShareData body as tag-length-varint fields:
// tag 1 = shamir_data, tag 2 = one signature component (repeated, in
// order), tag 3 = the encoded proof. Unsigned shares omit tags 2 and 3.
func EncodeBinary(d ShareData) []byte {
	w := &tlvWriter{}
	w.writeField(bodyTagShamirData, d.ShamirData)
	for _, component := range d.Signature {
		w.writeField(bodyTagSignature, component)
	}
	if d.Proof != nil {
		w.writeField(bodyTagProof, d.Proof)
	}
	return w.bytes()
}

// DecodeBinary parses a Binary-format share body produced by EncodeBinary.
func DecodeBinary(buf []byte) (ShareData, error) {
	fields, err := readFields(buf)
	if err != nil {
		return ShareData{}, fmt.Errorf("binary share body: %w", err)
	}

	var d ShareData
	var haveShamirData bool
	for _, f := range fields {
		switch f.tag {
		case bodyTagShamirData:
			d.ShamirData = append([]byte(nil), f.value...)
			haveShamirData = true
		case bodyTagSignature:
			d.Signature = append(d.Signature, append([]byte(nil), f.value...))
		case bodyTagProof:
			d.Proof = append([]byte(nil), f.value...)
		default:
			// Unknown tag: forward-compatible decoders ignore it.
		}
	}

	if !haveShamirData {
		return ShareData{}, fmt.Errorf("binary share body: missing shamir_data field")
	}
	return d, nil
}
