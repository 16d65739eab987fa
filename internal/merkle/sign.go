package merkle

import (
	"github.com/mrz1836/shamir-merkle/internal/entropy"
)

// Proof is everything a single share carries to authenticate itself
// against the root every other share in the set must also authenticate
// against: its one-time public key, its signature over the canonical
// signing form, and the sibling hashes needed to fold up to the root.
type Proof struct {
	PublicKey []byte
	Signature [][]byte
	Siblings  []LemmaStep
	Root      Digest
}

// SignAll builds a tree over the canonical signing forms (one per
// share, in index order), signs every leaf with a fresh one-time
// keypair drawn from src, and returns one Proof per share in the same
// order. The same root is embedded in every returned Proof.
func SignAll(src entropy.Source, signingForms [][]byte) ([]Proof, error) {
	tree := Build(signingForms)
	root := tree.Root()

	proofs := make([]Proof, len(signingForms))
	for i, form := range signingForms {
		kp, err := NewOTSKeyPair(src)
		if err != nil {
			return nil, err
		}
		digest := Keccak256(form)
		lemma := tree.Lemma(i)
		proofs[i] = Proof{
			PublicKey: kp.PublicKeyCompressed(),
			Signature: kp.Sign(digest),
			Siblings:  lemma.Siblings,
			Root:      root,
		}
	}
	return proofs, nil
}
