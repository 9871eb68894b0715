package dlog

import (
	"fmt"
	"io"
	"math/big"
)

// Curve is a prime-order elliptic-curve group together with its scalar field.
//
// Implementations are stateless singletons obtained from Secp256k1,
// Ristretto255, P256 or CurveByName. Points and scalars produced by a curve
// are immutable: every arithmetic method returns a fresh value and never
// modifies its receiver or arguments.
type Curve interface {
	// Name returns the registered curve name, e.g. "secp256k1".
	Name() string
	// Order returns the prime order n of the group.
	Order() *big.Int
	// Generator returns the distinguished base point G.
	Generator() Point
	// Identity returns the neutral element of the group.
	Identity() Point
	// RandomScalar draws a scalar uniformly from [0, n) using rand.
	RandomScalar(rand io.Reader) (Scalar, error)
	// ScalarFromBigInt reduces v modulo n.
	ScalarFromBigInt(v *big.Int) Scalar
	// ScalarFromBytes parses a fixed-width big-endian scalar. Values >= n are rejected.
	ScalarFromBytes(b []byte) (Scalar, error)
	// PointFromBytes parses a canonical point encoding and checks group membership.
	PointFromBytes(b []byte) (Point, error)
	// PointSize is the length of the uncompressed encoding of a non-identity point.
	PointSize() int
	// ScalarSize is the length of the fixed-width scalar encoding.
	ScalarSize() int
}

// Point is an element of a Curve.
type Point interface {
	Curve() Curve
	Add(q Point) Point
	Mul(k Scalar) Point
	Equal(q Point) bool
	IsIdentity() bool
	// Bytes returns the canonical uncompressed encoding.
	Bytes() []byte
}

// Scalar is an element of the scalar field of a Curve.
type Scalar interface {
	Curve() Curve
	Add(b Scalar) Scalar
	Mul(b Scalar) Scalar
	Equal(b Scalar) bool
	IsZero() bool
	// Bytes returns the fixed-width big-endian encoding.
	Bytes() []byte
	BigInt() *big.Int
}

const (
	CURVE_SECP256K1    = "secp256k1"
	CURVE_RISTRETTO255 = "ristretto255"
	CURVE_P256         = "P-256"
)

// Curves returns every supported curve, default first.
func Curves() []Curve {
	return []Curve{Secp256k1(), Ristretto255(), P256()}
}

func CurveByName(name string) (Curve, error) {
	for _, c := range Curves() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

func sameCurve(c Curve, values ...interface{ Curve() Curve }) bool {
	for _, v := range values {
		if v.Curve().Name() != c.Name() {
			return false
		}
	}
	return true
}

func mismatch(op string, v any) string {
	return fmt.Sprintf("%s: unsupported operand type %T", op, v)
}
