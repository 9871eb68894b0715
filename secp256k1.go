package dlog

import (
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	SECP256K1_POINT_LEN  = 65
	SECP256K1_SCALAR_LEN = 32
)

type secp256k1Curve struct{}

var secp256k1Instance = &secp256k1Curve{}

// Secp256k1 returns the secp256k1 group. It is the default curve.
func Secp256k1() Curve {
	return secp256k1Instance
}

func (c *secp256k1Curve) Name() string {
	return CURVE_SECP256K1
}

func (c *secp256k1Curve) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

func (c *secp256k1Curve) Generator() Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var g secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&one, &g)
	return newSecp256k1Point(&g)
}

func (c *secp256k1Curve) Identity() Point {
	return &secp256k1Point{infinity: true}
}

func (c *secp256k1Curve) RandomScalar(rand io.Reader) (Scalar, error) {
	var buf [SECP256K1_SCALAR_LEN]byte
	for {
		_, err := io.ReadFull(rand, buf[:])
		if err != nil {
			return nil, fmt.Errorf("secp256k1 random scalar: %w", err)
		}
		var k secp256k1.ModNScalar
		if overflow := k.SetByteSlice(buf[:]); overflow {
			continue
		}
		return &secp256k1Scalar{k: k}, nil
	}
}

func (c *secp256k1Curve) ScalarFromBigInt(v *big.Int) Scalar {
	r := new(big.Int).Mod(v, secp256k1.S256().N)
	var k secp256k1.ModNScalar
	k.SetByteSlice(r.FillBytes(make([]byte, SECP256K1_SCALAR_LEN)))
	return &secp256k1Scalar{k: k}
}

func (c *secp256k1Curve) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != SECP256K1_SCALAR_LEN {
		return nil, fmt.Errorf("%w: secp256k1 scalar length %d", ErrInvalidEncoding, len(b))
	}
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: secp256k1 scalar not reduced", ErrInvalidEncoding)
	}
	return &secp256k1Scalar{k: k}, nil
}

func (c *secp256k1Curve) PointFromBytes(b []byte) (Point, error) {
	if len(b) == 1 && b[0] == 0 {
		return c.Identity(), nil
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	var j secp256k1.JacobianPoint
	pub.AsJacobian(&j)
	return newSecp256k1Point(&j), nil
}

func (c *secp256k1Curve) PointSize() int {
	return SECP256K1_POINT_LEN
}

func (c *secp256k1Curve) ScalarSize() int {
	return SECP256K1_SCALAR_LEN
}

// secp256k1Point is kept in affine coordinates.
type secp256k1Point struct {
	x, y     secp256k1.FieldVal
	infinity bool
}

func newSecp256k1Point(j *secp256k1.JacobianPoint) *secp256k1Point {
	j.X.Normalize()
	j.Y.Normalize()
	j.Z.Normalize()
	if j.Z.IsZero() || (j.X.IsZero() && j.Y.IsZero()) {
		return &secp256k1Point{infinity: true}
	}
	j.ToAffine()
	p := &secp256k1Point{}
	p.x.Set(&j.X).Normalize()
	p.y.Set(&j.Y).Normalize()
	return p
}

func (p *secp256k1Point) jacobian() secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	if p.infinity {
		return j
	}
	j.X.Set(&p.x)
	j.Y.Set(&p.y)
	j.Z.SetInt(1)
	return j
}

func (p *secp256k1Point) Curve() Curve {
	return secp256k1Instance
}

func (p *secp256k1Point) Add(q Point) Point {
	o, ok := q.(*secp256k1Point)
	if !ok {
		panic(mismatch("secp256k1 add", q))
	}
	a, b := p.jacobian(), o.jacobian()
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a, &b, &r)
	return newSecp256k1Point(&r)
}

func (p *secp256k1Point) Mul(k Scalar) Point {
	s, ok := k.(*secp256k1Scalar)
	if !ok {
		panic(mismatch("secp256k1 mul", k))
	}
	if p.infinity || s.k.IsZero() {
		return &secp256k1Point{infinity: true}
	}
	a := p.jacobian()
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s.k, &a, &r)
	return newSecp256k1Point(&r)
}

func (p *secp256k1Point) Equal(q Point) bool {
	o, ok := q.(*secp256k1Point)
	if !ok {
		return false
	}
	if p.infinity || o.infinity {
		return p.infinity == o.infinity
	}
	return p.x.Equals(&o.x) && p.y.Equals(&o.y)
}

func (p *secp256k1Point) IsIdentity() bool {
	return p.infinity
}

func (p *secp256k1Point) Bytes() []byte {
	if p.infinity {
		return []byte{0x00}
	}
	var x, y secp256k1.FieldVal
	x.Set(&p.x)
	y.Set(&p.y)
	return secp256k1.NewPublicKey(&x, &y).SerializeUncompressed()
}

type secp256k1Scalar struct {
	k secp256k1.ModNScalar
}

func (s *secp256k1Scalar) Curve() Curve {
	return secp256k1Instance
}

func (s *secp256k1Scalar) Add(b Scalar) Scalar {
	o, ok := b.(*secp256k1Scalar)
	if !ok {
		panic(mismatch("secp256k1 scalar add", b))
	}
	var r secp256k1.ModNScalar
	r.Add2(&s.k, &o.k)
	return &secp256k1Scalar{k: r}
}

func (s *secp256k1Scalar) Mul(b Scalar) Scalar {
	o, ok := b.(*secp256k1Scalar)
	if !ok {
		panic(mismatch("secp256k1 scalar mul", b))
	}
	var r secp256k1.ModNScalar
	r.Mul2(&s.k, &o.k)
	return &secp256k1Scalar{k: r}
}

func (s *secp256k1Scalar) Equal(b Scalar) bool {
	o, ok := b.(*secp256k1Scalar)
	if !ok {
		return false
	}
	return s.k.Equals(&o.k)
}

func (s *secp256k1Scalar) IsZero() bool {
	return s.k.IsZero()
}

func (s *secp256k1Scalar) Bytes() []byte {
	b := s.k.Bytes()
	return b[:]
}

func (s *secp256k1Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}
