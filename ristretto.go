package dlog

import (
	"fmt"
	"io"
	"math/big"

	"github.com/bwesterb/go-ristretto"
)

const (
	RISTRETTO_POINT_LEN  = 32
	RISTRETTO_SCALAR_LEN = 32
)

// l = 2^252 + 27742317777372353535851937790883648493
var ristrettoOrder, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

type ristrettoCurve struct{}

var ristrettoInstance = &ristrettoCurve{}

// Ristretto255 returns the prime-order ristretto group built on Curve25519.
func Ristretto255() Curve {
	return ristrettoInstance
}

func (c *ristrettoCurve) Name() string {
	return CURVE_RISTRETTO255
}

func (c *ristrettoCurve) Order() *big.Int {
	return new(big.Int).Set(ristrettoOrder)
}

func (c *ristrettoCurve) Generator() Point {
	var base ristretto.Point
	base.SetBase()
	return &ristrettoPoint{p: base}
}

func (c *ristrettoCurve) Identity() Point {
	var zero ristretto.Point
	zero.SetZero()
	return &ristrettoPoint{p: zero}
}

func (c *ristrettoCurve) RandomScalar(rand io.Reader) (Scalar, error) {
	var key [64]byte
	_, err := io.ReadFull(rand, key[:])
	if err != nil {
		return nil, fmt.Errorf("ristretto255 random scalar: %w", err)
	}
	var s ristretto.Scalar
	s.SetReduced(&key)
	return &ristrettoScalar{s: s}, nil
}

func (c *ristrettoCurve) ScalarFromBigInt(v *big.Int) Scalar {
	r := new(big.Int).Mod(v, ristrettoOrder)
	var buf [32]byte
	copy(buf[:], reverseBytes(r.FillBytes(make([]byte, RISTRETTO_SCALAR_LEN))))
	var s ristretto.Scalar
	s.SetBytes(&buf)
	return &ristrettoScalar{s: s}
}

func (c *ristrettoCurve) ScalarFromBytes(b []byte) (Scalar, error) {
	v, err := canonicalScalar(c, b)
	if err != nil {
		return nil, err
	}
	return c.ScalarFromBigInt(v), nil
}

func (c *ristrettoCurve) PointFromBytes(b []byte) (Point, error) {
	if len(b) != RISTRETTO_POINT_LEN {
		return nil, fmt.Errorf("%w: ristretto255 point length %d", ErrInvalidEncoding, len(b))
	}
	var buf [32]byte
	copy(buf[:], b)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, fmt.Errorf("%w: ristretto255 point", ErrInvalidEncoding)
	}
	return &ristrettoPoint{p: p}, nil
}

func (c *ristrettoCurve) PointSize() int {
	return RISTRETTO_POINT_LEN
}

func (c *ristrettoCurve) ScalarSize() int {
	return RISTRETTO_SCALAR_LEN
}

type ristrettoPoint struct {
	p ristretto.Point
}

func (p *ristrettoPoint) Curve() Curve {
	return ristrettoInstance
}

func (p *ristrettoPoint) Add(q Point) Point {
	o, ok := q.(*ristrettoPoint)
	if !ok {
		panic(mismatch("ristretto255 add", q))
	}
	var r ristretto.Point
	r.Add(&p.p, &o.p)
	return &ristrettoPoint{p: r}
}

func (p *ristrettoPoint) Mul(k Scalar) Point {
	s, ok := k.(*ristrettoScalar)
	if !ok {
		panic(mismatch("ristretto255 mul", k))
	}
	var r ristretto.Point
	r.ScalarMult(&p.p, &s.s)
	return &ristrettoPoint{p: r}
}

func (p *ristrettoPoint) Equal(q Point) bool {
	o, ok := q.(*ristrettoPoint)
	if !ok {
		return false
	}
	return p.p.Equals(&o.p)
}

func (p *ristrettoPoint) IsIdentity() bool {
	var zero ristretto.Point
	zero.SetZero()
	return p.p.Equals(&zero)
}

// Bytes returns the 32-byte ristretto encoding, the only encoding the group has.
func (p *ristrettoPoint) Bytes() []byte {
	return p.p.Bytes()
}

// ristrettoScalar stores the little-endian scalar of go-ristretto; Bytes and
// BigInt expose it big-endian like the other curves.
type ristrettoScalar struct {
	s ristretto.Scalar
}

func (s *ristrettoScalar) Curve() Curve {
	return ristrettoInstance
}

func (s *ristrettoScalar) Add(b Scalar) Scalar {
	o, ok := b.(*ristrettoScalar)
	if !ok {
		panic(mismatch("ristretto255 scalar add", b))
	}
	var r ristretto.Scalar
	r.Add(&s.s, &o.s)
	return &ristrettoScalar{s: r}
}

func (s *ristrettoScalar) Mul(b Scalar) Scalar {
	o, ok := b.(*ristrettoScalar)
	if !ok {
		panic(mismatch("ristretto255 scalar mul", b))
	}
	var r ristretto.Scalar
	r.Mul(&s.s, &o.s)
	return &ristrettoScalar{s: r}
}

func (s *ristrettoScalar) Equal(b Scalar) bool {
	o, ok := b.(*ristrettoScalar)
	if !ok {
		return false
	}
	return s.s.Equals(&o.s)
}

func (s *ristrettoScalar) IsZero() bool {
	var zero ristretto.Scalar
	zero.SetZero()
	return s.s.Equals(&zero)
}

func (s *ristrettoScalar) Bytes() []byte {
	return reverseBytes(s.s.Bytes())
}

func (s *ristrettoScalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}
