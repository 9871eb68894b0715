package dlog

import (
	"bytes"
	"crypto/elliptic"
	"fmt"
	"io"
	"math/big"

	"github.com/cloudflare/circl/group"
)

const (
	P256_POINT_LEN  = 65
	P256_SCALAR_LEN = 32
)

type p256Curve struct{}

var p256Instance = &p256Curve{}

// P256 returns the NIST P-256 group.
func P256() Curve {
	return p256Instance
}

func (c *p256Curve) Name() string {
	return CURVE_P256
}

// Order comes from crypto/elliptic; circl's group API has no order accessor.
func (c *p256Curve) Order() *big.Int {
	return new(big.Int).Set(elliptic.P256().Params().N)
}

func (c *p256Curve) Generator() Point {
	return &p256Point{e: group.P256.Generator()}
}

func (c *p256Curve) Identity() Point {
	return &p256Point{e: group.P256.Identity()}
}

func (c *p256Curve) RandomScalar(rand io.Reader) (Scalar, error) {
	// circl panics on a failed read, so the entropy is drawn up front.
	var buf [P256_SCALAR_LEN]byte
	_, err := io.ReadFull(rand, buf[:])
	if err != nil {
		return nil, fmt.Errorf("P-256 random scalar: %w", err)
	}
	return &p256Scalar{k: group.P256.RandomScalar(bytes.NewReader(buf[:]))}, nil
}

func (c *p256Curve) ScalarFromBigInt(v *big.Int) Scalar {
	return &p256Scalar{k: group.P256.NewScalar().SetBigInt(v)}
}

func (c *p256Curve) ScalarFromBytes(b []byte) (Scalar, error) {
	v, err := canonicalScalar(c, b)
	if err != nil {
		return nil, err
	}
	return c.ScalarFromBigInt(v), nil
}

func (c *p256Curve) PointFromBytes(b []byte) (Point, error) {
	if len(b) == 1 && b[0] == 0 {
		return c.Identity(), nil
	}
	e := group.P256.NewElement()
	err := e.UnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return &p256Point{e: e}, nil
}

func (c *p256Curve) PointSize() int {
	return P256_POINT_LEN
}

func (c *p256Curve) ScalarSize() int {
	return P256_SCALAR_LEN
}

type p256Point struct {
	e group.Element
}

func (p *p256Point) Curve() Curve {
	return p256Instance
}

func (p *p256Point) Add(q Point) Point {
	o, ok := q.(*p256Point)
	if !ok {
		panic(mismatch("P-256 add", q))
	}
	return &p256Point{e: group.P256.NewElement().Add(p.e, o.e)}
}

func (p *p256Point) Mul(k Scalar) Point {
	s, ok := k.(*p256Scalar)
	if !ok {
		panic(mismatch("P-256 mul", k))
	}
	return &p256Point{e: group.P256.NewElement().Mul(p.e, s.k)}
}

func (p *p256Point) Equal(q Point) bool {
	o, ok := q.(*p256Point)
	if !ok {
		return false
	}
	return p.e.IsEqual(o.e)
}

func (p *p256Point) IsIdentity() bool {
	return p.e.IsIdentity()
}

func (p *p256Point) Bytes() []byte {
	if p.e.IsIdentity() {
		return []byte{0x00}
	}
	b, err := p.e.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

type p256Scalar struct {
	k group.Scalar
}

func (s *p256Scalar) Curve() Curve {
	return p256Instance
}

func (s *p256Scalar) Add(b Scalar) Scalar {
	o, ok := b.(*p256Scalar)
	if !ok {
		panic(mismatch("P-256 scalar add", b))
	}
	return &p256Scalar{k: group.P256.NewScalar().Add(s.k, o.k)}
}

func (s *p256Scalar) Mul(b Scalar) Scalar {
	o, ok := b.(*p256Scalar)
	if !ok {
		panic(mismatch("P-256 scalar mul", b))
	}
	return &p256Scalar{k: group.P256.NewScalar().Mul(s.k, o.k)}
}

func (s *p256Scalar) Equal(b Scalar) bool {
	o, ok := b.(*p256Scalar)
	if !ok {
		return false
	}
	return s.k.IsEqual(o.k)
}

func (s *p256Scalar) IsZero() bool {
	return s.k.IsZero()
}

func (s *p256Scalar) Bytes() []byte {
	b, err := s.k.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func (s *p256Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}
