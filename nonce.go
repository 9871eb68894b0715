package dlog

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	HEDGED_NONCE_SALT    = "dlog-hedged-nonce"
	HEDGED_NONCE_ENTROPY = 32
)

func (s *Scheme) nonce(c Curve, sid string, pid int32, x Scalar) (Scalar, error) {
	random := s.random
	if random == nil {
		random = rand.Reader
	}
	if !s.hedged {
		return c.RandomScalar(random)
	}

	entropy := make([]byte, HEDGED_NONCE_ENTROPY)
	_, err := io.ReadFull(random, entropy)
	if err != nil {
		return nil, fmt.Errorf("hedged nonce entropy: %w", err)
	}
	secret := append(entropy, x.Bytes()...)
	info := append(int32ToBytes(pid), []byte(sid)...)

	kdf := hkdf.New(sha256.New, secret, []byte(HEDGED_NONCE_SALT), info)
	return c.RandomScalar(kdf)
}
