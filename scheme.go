package dlog

import (
	"crypto/rand"
	"io"
)

// Scheme fixes the challenge derivation and the nonce source used by Prove
// and Verify. A Scheme is immutable once built and safe for concurrent use as
// long as its entropy source is.
type Scheme struct {
	challenger Challenger
	random     io.Reader
	hedged     bool
}

type Option func(*Scheme)

// WithChallenger replaces the default SHA-256 challenge derivation. Provers
// and verifiers must agree on it.
func WithChallenger(c Challenger) Option {
	return func(s *Scheme) {
		s.challenger = c
	}
}

// WithRandom sets the entropy source for nonces. It must be safe for
// concurrent use if the Scheme is shared.
func WithRandom(r io.Reader) Option {
	return func(s *Scheme) {
		s.random = r
	}
}

// WithHedgedNonces mixes the secret and the proof context into each nonce.
func WithHedgedNonces() Option {
	return func(s *Scheme) {
		s.hedged = true
	}
}

func NewScheme(opts ...Option) *Scheme {
	s := &Scheme{
		challenger: SHA256Challenger,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.challenger == nil {
		s.challenger = SHA256Challenger
	}
	if s.random == nil {
		s.random = rand.Reader
	}
	return s
}

var defaultScheme = NewScheme()

func (s *Scheme) DeriveChallenge(sid string, pid int32, points ...Point) (Scalar, error) {
	if s.challenger == nil {
		return SHA256Challenger.Challenge(sid, pid, points)
	}
	return s.challenger.Challenge(sid, pid, points)
}
