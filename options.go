package shamir

import (
	"log/slog"

	"github.com/mrz1836/shamir-merkle/internal/entropy"
)

type generateOpts struct {
	sign    bool
	format  Format
	entropy entropy.Source
	logger  *slog.Logger
}

func defaultGenerateOpts() generateOpts {
	return generateOpts{
		sign:    false,
		format:  Binary,
		entropy: entropy.Secure(),
		logger:  nil,
	}
}

// GenerateOption configures a single Generate call.
type GenerateOption func(*generateOpts)

// WithSign enables Merkle-signed shares: a tree is built over all n
// shares of this call and each share's leaf is signed with a fresh
// one-time keypair.
func WithSign(sign bool) GenerateOption {
	return func(o *generateOpts) { o.sign = sign }
}

// WithFormat selects the wire body encoding (Binary or Textual) shares
// are rendered in.
func WithFormat(format Format) GenerateOption {
	return func(o *generateOpts) { o.format = format }
}

// WithEntropySource overrides the randomness source used to draw
// polynomial coefficients and, if signing, one-time keypairs. Intended
// for tests that need reproducible output; see internal/entropy.Seeded.
func WithEntropySource(src entropy.Source) GenerateOption {
	return func(o *generateOpts) { o.entropy = src }
}

// WithLogger attaches a structured logger. Generate emits debug-level
// events at its major steps; a nil logger (the default) disables this.
func WithLogger(logger *slog.Logger) GenerateOption {
	return func(o *generateOpts) { o.logger = logger }
}

type recoverOpts struct {
	format          Format
	verify          bool
	allowDuplicates bool
	logger          *slog.Logger
}

func defaultRecoverOpts() recoverOpts {
	return recoverOpts{
		format:          Binary,
		verify:          false,
		allowDuplicates: false,
		logger:          nil,
	}
}

// RecoverOption configures a single Recover call.
type RecoverOption func(*recoverOpts)

// WithRecoverFormat selects which wire body encoding the input shares
// are parsed as.
func WithRecoverFormat(format Format) RecoverOption {
	return func(o *recoverOpts) { o.format = format }
}

// WithVerify requires every input share to carry a valid signature
// bundle, all authenticating against the same Merkle root, before
// reconstruction proceeds. Recover fails with
// errors.ErrSignatureMissing or errors.ErrSignatureInvalid otherwise.
func WithVerify(verify bool) RecoverOption {
	return func(o *recoverOpts) { o.verify = verify }
}

// WithDuplicatePolicy controls how repeated share indices are handled.
// By default (false) any duplicate index is rejected with
// errors.ErrInconsistentShares. Passing true permits duplicates,
// keeping only the lowest-indexed occurrence of each index.
func WithDuplicatePolicy(allowDuplicates bool) RecoverOption {
	return func(o *recoverOpts) { o.allowDuplicates = allowDuplicates }
}

// WithRecoverLogger attaches a structured logger to a Recover call.
func WithRecoverLogger(logger *slog.Logger) RecoverOption {
	return func(o *recoverOpts) { o.logger = logger }
}
