package dlog

import "errors"

var (
	// ErrZeroChallenge is returned when the Fiat-Shamir hash reduces to zero.
	// The derivation is deterministic, so retrying with the same inputs cannot succeed.
	ErrZeroChallenge = errors.New("hash resulted in zero scalar")

	ErrNilInput        = errors.New("nil input")
	ErrNoPoints        = errors.New("no points to hash")
	ErrCurveMismatch   = errors.New("values belong to different curves")
	ErrUnknownCurve    = errors.New("unknown curve")
	ErrInvalidEncoding = errors.New("invalid encoding")
)
