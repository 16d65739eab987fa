package merkle

import (
	shamirerr "github.com/mrz1836/shamir-merkle/pkg/errors"
)

// VerifyLeaf checks that signingForm authenticates against proof: the
// signature must verify under proof.PublicKey, and folding the leaf
// hash through proof.Siblings must reproduce proof.Root.
func VerifyLeaf(signingForm []byte, proof Proof) error {
	digest := Keccak256(signingForm)
	if err := VerifyOTS(proof.PublicKey, digest, proof.Signature); err != nil {
		return shamirerr.Wrap(shamirerr.ErrSignatureInvalid, "one-time signature did not verify: %v", err)
	}

	leafHash := hashLeaf(signingForm)
	folded := Fold(leafHash, proof.Siblings)
	if folded != proof.Root {
		return shamirerr.New(shamirerr.KindSignatureInvalid, "leaf does not authenticate against the recorded root")
	}
	return nil
}

// VerifySet checks a batch of (signingForm, proof) pairs presented
// together as a candidate share set: each must individually verify, and
// all must share the same root, since shares authenticated against
// different trees did not originate from the same Generate call.
func VerifySet(signingForms [][]byte, proofs []Proof) error {
	if len(signingForms) != len(proofs) {
		return shamirerr.New(shamirerr.KindBadParameter, "signing form count (%d) does not match proof count (%d)", len(signingForms), len(proofs))
	}
	if len(proofs) == 0 {
		return shamirerr.New(shamirerr.KindInsufficientShares, "no shares to verify")
	}

	root := proofs[0].Root
	for i := range proofs {
		if proofs[i].Root != root {
			return shamirerr.New(shamirerr.KindSignatureInvalid, "share %d authenticates against a different root than share 0", i)
		}
		if err := VerifyLeaf(signingForms[i], proofs[i]); err != nil {
			return shamirerr.Wrap(err, "share %d failed authentication", i)
		}
	}
	return nil
}
