package merkle

import (
	"testing"

	"github.com/mrz1836/shamir-merkle/internal/entropy"
)

func formsFor(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte{byte(n), byte(i), 'f', 'o', 'r', 'm'}
	}
	return out
}

func TestSignAllThenVerifySet(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 9} {
		forms := formsFor(n)
		proofs, err := SignAll(entropy.Secure(), forms)
		if err != nil {
			t.Fatalf("n=%d: SignAll: %v", n, err)
		}
		if err := VerifySet(forms, proofs); err != nil {
			t.Errorf("n=%d: VerifySet failed: %v", n, err)
		}
	}
}

func TestVerifySetDetectsTamperedForm(t *testing.T) {
	forms := formsFor(4)
	proofs, err := SignAll(entropy.Secure(), forms)
	if err != nil {
		t.Fatalf("SignAll: %v", err)
	}

	tampered := make([][]byte, len(forms))
	copy(tampered, forms)
	tampered[2] = []byte("not-the-original-form")

	if err := VerifySet(tampered, proofs); err == nil {
		t.Error("expected VerifySet to reject a tampered signing form")
	}
}

func TestVerifySetDetectsForeignProof(t *testing.T) {
	formsA := formsFor(3)
	formsB := formsFor(4)

	proofsA, err := SignAll(entropy.Secure(), formsA)
	if err != nil {
		t.Fatalf("SignAll A: %v", err)
	}
	proofsB, err := SignAll(entropy.Secure(), formsB)
	if err != nil {
		t.Fatalf("SignAll B: %v", err)
	}

	mixed := append(append([]Proof{}, proofsA[:2]...), proofsB[0])
	mixedForms := append(append([][]byte{}, formsA[:2]...), formsB[0])

	if err := VerifySet(mixedForms, mixed); err == nil {
		t.Error("expected VerifySet to reject shares authenticated against different roots")
	}
}

func TestVerifySetRejectsLengthMismatch(t *testing.T) {
	forms := formsFor(3)
	proofs, err := SignAll(entropy.Secure(), forms)
	if err != nil {
		t.Fatalf("SignAll: %v", err)
	}
	if err := VerifySet(forms, proofs[:2]); err == nil {
		t.Error("expected VerifySet to reject mismatched slice lengths")
	}
}
