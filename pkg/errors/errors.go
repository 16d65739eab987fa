// Package errors provides structured error handling for the threshold
// secret-sharing core: sentinel errors, machine-readable kinds, and
// helpers for adding context to an error without losing its identity.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Kind classifies a ShareError by which abstract failure category it
// belongs to, independent of its human-readable message.
type Kind string

// Error kinds, one per abstract category in the design.
const (
	KindBadParameter          Kind = "BAD_PARAMETER"
	KindShareParsing          Kind = "SHARE_PARSING"
	KindInconsistentShares    Kind = "INCONSISTENT_SHARES"
	KindInsufficientShares    Kind = "INSUFFICIENT_SHARES"
	KindSignatureMissing      Kind = "SIGNATURE_MISSING"
	KindSignatureInvalid      Kind = "SIGNATURE_INVALID"
	KindRandomnessUnavailable Kind = "RANDOMNESS_UNAVAILABLE"
)

// ShareError is the structured error type returned by the shamir package.
type ShareError struct {
	Kind    Kind              // Machine-readable category
	Message string            // Human-readable message
	Details map[string]string // Additional context (e.g. "index")
	Cause   error             // Underlying error, if any
}

func (e *ShareError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *ShareError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for ShareError: two ShareErrors match if they
// share the same Kind, regardless of message or details.
func (e *ShareError) Is(target error) bool {
	var t *ShareError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors, one per Kind. Compare against these with errors.Is.
var (
	ErrBadParameter = &ShareError{
		Kind:    KindBadParameter,
		Message: "invalid parameter",
	}

	ErrShareParsing = &ShareError{
		Kind:    KindShareParsing,
		Message: "malformed share",
	}

	ErrInconsistentShares = &ShareError{
		Kind:    KindInconsistentShares,
		Message: "shares are inconsistent",
	}

	ErrInsufficientShares = &ShareError{
		Kind:    KindInsufficientShares,
		Message: "insufficient shares",
	}

	ErrSignatureMissing = &ShareError{
		Kind:    KindSignatureMissing,
		Message: "share has no signature bundle",
	}

	ErrSignatureInvalid = &ShareError{
		Kind:    KindSignatureInvalid,
		Message: "signature verification failed",
	}

	ErrRandomnessUnavailable = &ShareError{
		Kind:    KindRandomnessUnavailable,
		Message: "randomness source unavailable",
	}
)

// New creates a ShareError of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *ShareError {
	return &ShareError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps err as the Cause of a new ShareError, preserving err's Kind
// when err is itself (or wraps) a ShareError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *ShareError
	if errors.As(err, &se) {
		return &ShareError{
			Kind:    se.Kind,
			Message: fmt.Sprintf("%s: %s", msg, se.Message),
			Details: se.Details,
			Cause:   err,
		}
	}

	return &ShareError{
		Kind:    KindBadParameter,
		Message: msg,
		Cause:   err,
	}
}

// WithDetails returns a copy of err with the given details attached.
// Used for carrying the offending share's external index (spec §7).
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *ShareError
	if errors.As(err, &se) {
		return &ShareError{
			Kind:    se.Kind,
			Message: se.Message,
			Details: details,
			Cause:   se.Cause,
		}
	}

	return &ShareError{
		Kind:    KindBadParameter,
		Message: err.Error(),
		Details: details,
		Cause:   err,
	}
}

// ShareIndexError builds a ShareParsing error carrying the external index
// of the offending share, as required by spec §7.
func ShareIndexError(index int, detail string) error {
	return WithDetails(New(KindShareParsing, "%s", detail), map[string]string{
		"index": fmt.Sprintf("%d", index),
	})
}

// GetKind returns the Kind of err, or "" if err is not a ShareError.
func GetKind(err error) Kind {
	var se *ShareError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
