package shamir

import (
	"log/slog"

	"github.com/mrz1836/shamir-merkle/internal/entropy"
	"github.com/mrz1836/shamir-merkle/internal/merkle"
	"github.com/mrz1836/shamir-merkle/internal/poly"
	"github.com/mrz1836/shamir-merkle/internal/wire"
	shamirerr "github.com/mrz1836/shamir-merkle/pkg/errors"
)

// Generate splits secret into n textual shares such that any k of them
// reconstruct secret exactly, and any k-1 reveal nothing about it.
func Generate(k, n int, secret []byte, opts ...GenerateOption) ([]string, error) {
	o := defaultGenerateOpts()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateParams(k, n); err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, shamirerr.New(shamirerr.KindBadParameter, "secret must not be empty")
	}

	logDebug(o.logger, "generate started", slog.Int("k", k), slog.Int("n", n), slog.Int("secret_len", len(secret)))

	payloads, err := splitSecret(k, n, secret, o.entropy)
	if err != nil {
		return nil, err
	}

	var proofs []merkle.Proof
	if o.sign {
		forms := make([][]byte, n)
		for i, payload := range payloads {
			forms[i] = signingForm(k, i+1, payload)
		}
		proofs, err = merkle.SignAll(o.entropy, forms)
		if err != nil {
			return nil, shamirerr.Wrap(err, "signing shares failed")
		}
		logDebug(o.logger, "merkle root computed", slog.Int("n", n))
	}

	shares := make([]string, n)
	for i, payload := range payloads {
		data := wire.ShareData{ShamirData: payload}
		if o.sign {
			p := proofs[i]
			data.Signature = p.Signature
			data.Proof = wire.EncodeProof(p)
		}

		s, err := wire.FormatShare(k, i+1, o.format, data)
		if err != nil {
			return nil, shamirerr.Wrap(err, "formatting share %d failed", i+1)
		}
		shares[i] = s
	}

	logDebug(o.logger, "generate finished", slog.Int("shares", len(shares)))
	return shares, nil
}

// validateParams checks k and n against the domain invariants shared by
// Generate and the wire grammar: both are >=1 and k<=n, and both must
// fit the single-byte share index/threshold encoding the field and
// polynomial codec assume.
func validateParams(k, n int) error {
	if k < 1 {
		return shamirerr.New(shamirerr.KindBadParameter, "threshold k must be >= 1, got %d", k)
	}
	if n < 1 {
		return shamirerr.New(shamirerr.KindBadParameter, "share count n must be >= 1, got %d", n)
	}
	if k > n {
		return shamirerr.New(shamirerr.KindBadParameter, "threshold k (%d) must not exceed share count n (%d)", k, n)
	}
	if n > 255 {
		return shamirerr.New(shamirerr.KindBadParameter, "share count n must be <= 255, got %d", n)
	}
	return nil
}

// splitSecret draws k-1 random coefficient bytes per byte of secret and
// evaluates the resulting degree-(k-1) polynomial at x=1..n, returning
// one payload slice per share index (payloads[i] holds the share for
// index i+1, one byte per column of secret).
func splitSecret(k, n int, secret []byte, src entropy.Source) ([][]byte, error) {
	payloads := make([][]byte, n)
	for i := range payloads {
		payloads[i] = make([]byte, len(secret))
	}

	coeffBuf := make([]byte, k-1)
	for col, secretByte := range secret {
		if k > 1 {
			if err := entropy.Fill(src, coeffBuf); err != nil {
				return nil, err
			}
		}
		column := poly.Encode(secretByte, coeffBuf, n)
		for i := range payloads {
			payloads[i][col] = column[i]
		}
	}
	return payloads, nil
}
