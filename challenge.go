package dlog

import (
	"crypto/sha256"
	"hash"
	"math/big"

	"github.com/dchest/blake2b"
	"golang.org/x/crypto/sha3"
)

// Challenger maps a session id, a participant id and an ordered list of
// points to a non-zero challenge scalar on the curve of the points.
type Challenger interface {
	Challenge(sid string, pid int32, points []Point) (Scalar, error)
}

// HashChallenger hashes sid || pid (4 bytes big-endian) || points with a
// 256-bit hash and reduces the big-endian digest modulo the group order.
// A nil New means SHA-256.
type HashChallenger struct {
	New func() hash.Hash
}

var (
	SHA256Challenger     Challenger = &HashChallenger{New: sha256.New}
	BLAKE2b256Challenger Challenger = &HashChallenger{New: blake2b.New256}
	SHA3_256Challenger   Challenger = &HashChallenger{New: sha3.New256}
)

func (h *HashChallenger) Challenge(sid string, pid int32, points []Point) (Scalar, error) {
	c, err := pointsCurve(points)
	if err != nil {
		return nil, err
	}

	newHash := h.New
	if newHash == nil {
		newHash = sha256.New
	}
	hash := newHash()
	hash.Write([]byte(sid))
	hash.Write(int32ToBytes(pid))
	for _, p := range points {
		hash.Write(p.Bytes())
	}
	return challengeScalar(c, hash.Sum(nil))
}

// DeriveChallenge derives the Fiat-Shamir challenge with SHA-256.
func DeriveChallenge(sid string, pid int32, points ...Point) (Scalar, error) {
	return defaultScheme.DeriveChallenge(sid, pid, points...)
}

func pointsCurve(points []Point) (Curve, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	for _, p := range points {
		if p == nil {
			return nil, ErrNilInput
		}
	}
	c := points[0].Curve()
	for _, p := range points[1:] {
		if !sameCurve(c, p) {
			return nil, ErrCurveMismatch
		}
	}
	return c, nil
}

func challengeScalar(c Curve, digest []byte) (Scalar, error) {
	s := c.ScalarFromBigInt(new(big.Int).SetBytes(digest))
	if s.IsZero() {
		return nil, ErrZeroChallenge
	}
	return s, nil
}
