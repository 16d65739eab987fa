package merkle

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/mrz1836/shamir-merkle/internal/entropy"
)

var (
	// ErrInvalidPrivateKey indicates the generated private key was rejected
	// by the curve (practically unreachable with a real entropy source).
	ErrInvalidPrivateKey = errors.New("invalid one-time private key")

	// ErrSignatureVerification indicates an OTS signature failed to verify
	// against the leaf's recorded public key.
	ErrSignatureVerification = errors.New("one-time signature verification failed")
)

// Keccak256 hashes data the way the signing digest is always computed:
// one-time signatures sign Keccak256(canonical signing form), never the
// raw form itself and never SHA-512 (reserved for the tree's own nodes).
func Keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// OTSKeyPair is a single-use secp256k1 keypair: generated once, used to
// sign exactly one leaf, and then discarded by the caller.
type OTSKeyPair struct {
	priv *secp256k1.PrivateKey
}

// NewOTSKeyPair draws a fresh one-time keypair from src.
func NewOTSKeyPair(src entropy.Source) (*OTSKeyPair, error) {
	buf := make([]byte, 32)
	if err := entropy.Fill(src, buf); err != nil {
		return nil, err
	}
	priv := secp256k1.PrivKeyFromBytes(buf)
	if priv == nil {
		return nil, ErrInvalidPrivateKey
	}
	return &OTSKeyPair{priv: priv}, nil
}

// PublicKeyCompressed returns the 33-byte compressed public key recorded
// in the leaf's proof.
func (kp *OTSKeyPair) PublicKeyCompressed() []byte {
	return kp.priv.PubKey().SerializeCompressed()
}

// Sign signs digest (the Keccak256 of a canonical signing form) and
// returns the signature as the ordered triple [R(32), S(32), V(1)].
func (kp *OTSKeyPair) Sign(digest [32]byte) [][]byte {
	sig := ecdsa.SignCompact(kp.priv, digest[:], false)
	// SignCompact returns [V || R || S]; rearrange to [R, S, V].
	v := sig[0] - 27
	r := append([]byte(nil), sig[1:33]...)
	s := append([]byte(nil), sig[33:65]...)
	return [][]byte{r, s, {v}}
}

// VerifyOTS checks that sig (an ordered [R, S, V] triple) is a valid
// signature over digest under the 33-byte compressed public key pubKey.
func VerifyOTS(pubKey []byte, digest [32]byte, sig [][]byte) error {
	if len(sig) != 3 || len(sig[0]) != 32 || len(sig[1]) != 32 || len(sig[2]) != 1 {
		return ErrSignatureVerification
	}

	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return ErrSignatureVerification
	}

	// Recompose into the compact [V || R || S] form SignCompact produced.
	compact := make([]byte, 65)
	compact[0] = sig[2][0] + 27
	copy(compact[1:33], sig[0])
	copy(compact[33:65], sig[1])

	recovered, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return ErrSignatureVerification
	}
	if !recovered.IsEqual(pk) {
		return ErrSignatureVerification
	}
	return nil
}
