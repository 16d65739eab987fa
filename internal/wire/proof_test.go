package wire

import (
	"testing"

	"github.com/mrz1836/shamir-merkle/internal/merkle"
)

func TestProofRoundTrip(t *testing.T) {
	var root merkle.Digest
	for i := range root {
		root[i] = byte(i)
	}

	p := merkle.Proof{
		Root:      root,
		PublicKey: []byte{0x02, 1, 2, 3},
		Siblings: []merkle.LemmaStep{
			{Hash: root, IsLeft: true},
			{Hash: root, IsLeft: false},
		},
	}

	got, err := DecodeProof(EncodeProof(p))
	if err != nil {
		t.Fatalf("DecodeProof: %v", err)
	}
	if got.Root != p.Root {
		t.Error("Root mismatch")
	}
	if len(got.Siblings) != 2 || got.Siblings[0].IsLeft != true || got.Siblings[1].IsLeft != false {
		t.Errorf("Siblings mismatch: %+v", got.Siblings)
	}
}

func TestDecodeProofRejectsMissingRoot(t *testing.T) {
	w := &tlvWriter{}
	w.writeField(proofTagPublicKey, []byte{1, 2, 3})
	if _, err := DecodeProof(w.bytes()); err == nil {
		t.Error("expected error for proof missing root")
	}
}

func TestDecodeProofRejectsMissingPublicKey(t *testing.T) {
	var root merkle.Digest
	w := &tlvWriter{}
	w.writeField(proofTagRoot, root[:])
	if _, err := DecodeProof(w.bytes()); err == nil {
		t.Error("expected error for proof missing public_key")
	}
}
