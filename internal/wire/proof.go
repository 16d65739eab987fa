package wire

import (
	"fmt"

	"github.com/mrz1836/shamir-merkle/internal/merkle"
)

const (
	proofTagRoot      = 1
	proofTagPublicKey = 2
	proofTagSibling   = 3 // repeated
)

const siblingEntrySize = 1 + len(merkle.Digest{}) // isLeft byte + SHA-512 hash

// EncodeProof serializes a merkle.Proof into the flat byte form carried
// as the "proof" field of a share body.
func EncodeProof(p merkle.Proof) []byte {
	w := &tlvWriter{}
	w.writeField(proofTagRoot, p.Root[:])
	w.writeField(proofTagPublicKey, p.PublicKey)
	for _, s := range p.Siblings {
		entry := make([]byte, 0, siblingEntrySize)
		if s.IsLeft {
			entry = append(entry, 1)
		} else {
			entry = append(entry, 0)
		}
		entry = append(entry, s.Hash[:]...)
		w.writeField(proofTagSibling, entry)
	}
	return w.bytes()
}

// DecodeProof parses the flat byte form produced by EncodeProof back
// into a merkle.Proof.
func DecodeProof(buf []byte) (merkle.Proof, error) {
	fields, err := readFields(buf)
	if err != nil {
		return merkle.Proof{}, fmt.Errorf("proof: %w", err)
	}

	var p merkle.Proof
	var haveRoot bool
	for _, f := range fields {
		switch f.tag {
		case proofTagRoot:
			if len(f.value) != len(merkle.Digest{}) {
				return merkle.Proof{}, fmt.Errorf("proof: root field has wrong length %d", len(f.value))
			}
			copy(p.Root[:], f.value)
			haveRoot = true
		case proofTagPublicKey:
			p.PublicKey = append([]byte(nil), f.value...)
		case proofTagSibling:
			if len(f.value) != siblingEntrySize {
				return merkle.Proof{}, fmt.Errorf("proof: sibling entry has wrong length %d", len(f.value))
			}
			var hash merkle.Digest
			copy(hash[:], f.value[1:])
			p.Siblings = append(p.Siblings, merkle.LemmaStep{
				Hash:   hash,
				IsLeft: f.value[0] == 1,
			})
		default:
			// Unknown tag: forward-compatible decoders ignore it.
		}
	}

	if !haveRoot {
		return merkle.Proof{}, fmt.Errorf("proof: missing root field")
	}
	if len(p.PublicKey) == 0 {
		return merkle.Proof{}, fmt.Errorf("proof: missing public_key field")
	}
	return p, nil
}
