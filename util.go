package dlog

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

func reverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	for i := range b {
		r[len(b)-1-i] = b[i]
	}
	return r
}

// canonicalScalar parses a fixed-width big-endian value and requires it to be below the order.
func canonicalScalar(c Curve, b []byte) (*big.Int, error) {
	if len(b) != c.ScalarSize() {
		return nil, fmt.Errorf("%w: %s scalar length %d", ErrInvalidEncoding, c.Name(), len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(c.Order()) >= 0 {
		return nil, fmt.Errorf("%w: %s scalar not reduced", ErrInvalidEncoding, c.Name())
	}
	return v, nil
}

func int32ToBytes(i int32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(i))
	return buf
}
