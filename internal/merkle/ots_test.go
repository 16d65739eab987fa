package merkle

import (
	"testing"

	"github.com/mrz1836/shamir-merkle/internal/entropy"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := NewOTSKeyPair(entropy.Secure())
	if err != nil {
		t.Fatalf("NewOTSKeyPair: %v", err)
	}

	digest := Keccak256([]byte("1-2-c29tZWJvZHk"))
	sig := kp.Sign(digest)

	if err := VerifyOTS(kp.PublicKeyCompressed(), digest, sig); err != nil {
		t.Errorf("VerifyOTS failed on a genuine signature: %v", err)
	}
}

func TestVerifyOTSRejectsWrongDigest(t *testing.T) {
	kp, err := NewOTSKeyPair(entropy.Secure())
	if err != nil {
		t.Fatalf("NewOTSKeyPair: %v", err)
	}

	sig := kp.Sign(Keccak256([]byte("form-a")))
	if err := VerifyOTS(kp.PublicKeyCompressed(), Keccak256([]byte("form-b")), sig); err == nil {
		t.Error("expected verification failure for mismatched digest")
	}
}

func TestVerifyOTSRejectsWrongKey(t *testing.T) {
	kp1, _ := NewOTSKeyPair(entropy.Secure())
	kp2, _ := NewOTSKeyPair(entropy.Secure())

	digest := Keccak256([]byte("shared-form"))
	sig := kp1.Sign(digest)

	if err := VerifyOTS(kp2.PublicKeyCompressed(), digest, sig); err == nil {
		t.Error("expected verification failure against a different key")
	}
}

func TestVerifyOTSRejectsMalformedSignature(t *testing.T) {
	kp, _ := NewOTSKeyPair(entropy.Secure())
	digest := Keccak256([]byte("x"))

	if err := VerifyOTS(kp.PublicKeyCompressed(), digest, [][]byte{{1, 2, 3}}); err == nil {
		t.Error("expected verification failure for malformed signature shape")
	}
}
