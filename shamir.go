// Package shamir implements threshold secret sharing over GF(2^8): a
// secret of any length is split into n textual shares such that any k
// reconstruct it exactly and any k-1 reveal nothing. Shares may
// optionally carry a one-time signature binding them to a single Merkle
// root computed over one Generate call's n shares, so that shares
// presented together for reconstruction can be checked for set
// membership without trusting the transport that carried them.
package shamir

import (
	"encoding/base64"
	"fmt"

	"github.com/mrz1836/shamir-merkle/internal/merkle"
	"github.com/mrz1836/shamir-merkle/internal/wire"
)

// Format selects which share body encoding Generate/ParseShare use.
type Format = wire.Format

const (
	// Binary encodes share bodies as tag-length-varint fields.
	Binary Format = wire.Binary
	// Textual encodes share bodies as JSON with base64 binary fields.
	Textual Format = wire.Textual
)

// MerkleProof is the authentication path a signed share carries: the
// sibling hashes needed to fold the share's leaf hash up to RootHash,
// plus the one-time public key its Signature verifies under.
type MerkleProof struct {
	Siblings  []merkle.LemmaStep
	RootHash  merkle.Digest
	PublicKey []byte
}

// SignatureBundle is the one-time signature and authentication path
// carried by a signed share.
type SignatureBundle struct {
	Sig   [][]byte
	Proof MerkleProof
}

// Share is a single parsed or generated share.
type Share struct {
	Threshold int
	Index     int
	Payload   []byte
	Signature *SignatureBundle
}

// Signed reports whether the share carries a signature bundle.
func (s Share) Signed() bool {
	return s.Signature != nil
}

func toMerkleProof(p merkle.Proof) MerkleProof {
	return MerkleProof{Siblings: p.Siblings, RootHash: p.Root, PublicKey: p.PublicKey}
}

func fromMerkleProof(p MerkleProof) merkle.Proof {
	return merkle.Proof{Siblings: p.Siblings, Root: p.RootHash, PublicKey: p.PublicKey}
}

// signingForm builds the canonical bytes a share signs: "K-I-" followed
// by unpadded base64 of the share's raw payload, independent of which
// wire Format the share is ultimately rendered in.
func signingForm(k, i int, payload []byte) []byte {
	return []byte(fmt.Sprintf("%d-%d-%s", k, i, base64.RawStdEncoding.EncodeToString(payload)))
}
