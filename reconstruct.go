package shamir

import (
	"log/slog"
	"strconv"

	"github.com/mrz1836/shamir-merkle/internal/merkle"
	"github.com/mrz1836/shamir-merkle/internal/poly"
	"github.com/mrz1836/shamir-merkle/internal/wire"
	shamirerr "github.com/mrz1836/shamir-merkle/pkg/errors"
)

// Recover reconstructs the original secret from a set of shares
// produced by a single Generate call. At least the threshold declared
// by the shares themselves must be present.
func Recover(shareStrings []string, opts ...RecoverOption) ([]byte, error) {
	o := defaultRecoverOpts()
	for _, opt := range opts {
		opt(&o)
	}

	if len(shareStrings) == 0 {
		return nil, shamirerr.New(shamirerr.KindInsufficientShares, "no shares provided")
	}

	parsed := make([]Share, len(shareStrings))
	for i, s := range shareStrings {
		share, err := ParseShare(s, i+1, o.verify, o.format)
		if err != nil {
			return nil, err
		}
		parsed[i] = share
	}

	logDebug(o.logger, "recover parsed shares", slog.Int("count", len(parsed)))

	if o.verify {
		if err := verifyShareSet(parsed); err != nil {
			logError(o.logger, "signature verification failed", slog.String("error", err.Error()))
			return nil, err
		}
	}

	usable, err := validateShareSet(parsed, o.allowDuplicates)
	if err != nil {
		return nil, err
	}

	secret, err := interpolateSecret(usable)
	if err != nil {
		return nil, err
	}

	logDebug(o.logger, "recover finished", slog.Int("secret_len", len(secret)))
	return secret, nil
}

// verifyShareSet requires every share to carry a signature bundle and
// authenticate against a single common Merkle root.
func verifyShareSet(shares []Share) error {
	forms := make([][]byte, len(shares))
	proofs := make([]merkle.Proof, len(shares))

	for i, s := range shares {
		if !s.Signed() {
			return shamirerr.ShareIndexError(s.Index, "share has no signature bundle")
		}
		forms[i] = signingForm(s.Threshold, s.Index, s.Payload)
		proofs[i] = fromMerkleProof(s.Signature.Proof)
		proofs[i].Signature = s.Signature.Sig
	}

	return merkle.VerifySet(forms, proofs)
}

// interpolateSecret recovers one secret byte per payload column via
// Lagrange interpolation at x=0, using exactly threshold points drawn
// from the validated share set (extra shares beyond threshold are
// accepted by validateShareSet but ignored here, matching the "any k of
// n reconstruct" invariant literally).
func interpolateSecret(shares []Share) ([]byte, error) {
	threshold := shares[0].Threshold
	columnCount := len(shares[0].Payload)
	for _, s := range shares {
		if len(s.Payload) != columnCount {
			return nil, shamirerr.New(shamirerr.KindInconsistentShares,
				"share %d has payload length %d, expected %d", s.Index, len(s.Payload), columnCount)
		}
	}

	points := make([]poly.Point, threshold)
	secret := make([]byte, columnCount)
	for col := 0; col < columnCount; col++ {
		for i := 0; i < threshold; i++ {
			points[i] = poly.Point{X: byte(shares[i].Index), Y: shares[i].Payload[col]}
		}
		secret[col] = poly.Decode(points)
	}
	return secret, nil
}

// ParseShare parses a single share string into a Share. index is the
// caller's external identifier for this share (e.g. its position in a
// batch), used only to annotate errors raised while parsing it. When
// signed is true, the share must carry a signature bundle or parsing
// fails with errors.ErrSignatureMissing.
func ParseShare(s string, index int, signed bool, format Format) (Share, error) {
	parsed, err := wire.ParseShare(s, format)
	if err != nil {
		return Share{}, shamirerr.ShareIndexError(index, err.Error())
	}

	share := Share{
		Threshold: parsed.Threshold,
		Index:     parsed.Index,
		Payload:   parsed.Data.ShamirData,
	}

	if parsed.Data.Signed() {
		proof, err := wire.DecodeProof(parsed.Data.Proof)
		if err != nil {
			return Share{}, shamirerr.ShareIndexError(index, "malformed proof: "+err.Error())
		}
		share.Signature = &SignatureBundle{
			Sig:   parsed.Data.Signature,
			Proof: toMerkleProof(proof),
		}
	} else if signed {
		return Share{}, shamirerr.WithDetails(
			shamirerr.ErrSignatureMissing,
			map[string]string{"index": strconv.Itoa(index)},
		)
	}

	return share, nil
}
