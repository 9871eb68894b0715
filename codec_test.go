package dlog

import (
	"encoding/hex"
	"errors"
	"log"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func newTestProof(t *testing.T, c Curve) (*Proof, Point) {
	t.Helper()
	x, y := randomKeyPair(t, c)
	proof, err := Prove("sid", 1, x, y, c.Generator())
	require.NoError(t, err)
	return proof, y
}

func TestProofBinary(t *testing.T) {
	for _, c := range Curves() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			assert := assert.New(t)
			g := c.Generator()
			proof, y := newTestProof(t, c)

			data, err := proof.MarshalBinary()
			assert.Nil(err)
			assert.Len(data, c.PointSize()+c.ScalarSize())
			log.Println(c.Name(), "proof:", hex.EncodeToString(data))

			decoded, err := ParseProof(c, data)
			assert.Nil(err)
			assert.True(decoded.T.Equal(proof.T))
			assert.True(decoded.S.Equal(proof.S))
			assert.True(decoded.Verify("sid", 1, y, g))

			_, err = ParseProof(c, data[1:])
			assert.True(errors.Is(err, ErrInvalidEncoding))
		})
	}
}

func TestProofBitFlips(t *testing.T) {
	for _, c := range Curves() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			assert := assert.New(t)
			g := c.Generator()
			proof, y := newTestProof(t, c)
			data, err := proof.MarshalBinary()
			require.NoError(t, err)

			for i := 0; i < len(data)*8; i++ {
				flipped := append([]byte{}, data...)
				flipped[i/8] ^= 1 << uint(i%8)
				decoded, err := ParseProof(c, flipped)
				if err != nil {
					assert.True(errors.Is(err, ErrInvalidEncoding), "bit %d: %v", i, err)
					continue
				}
				assert.False(decoded.Verify("sid", 1, y, g), "bit %d", i)
			}
		})
	}
}

func TestProofEncodingRejects(t *testing.T) {
	for _, c := range Curves() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			assert := assert.New(t)
			proof, _ := newTestProof(t, c)

			_, err := (&Proof{T: c.Identity(), S: proof.S}).MarshalBinary()
			assert.True(errors.Is(err, ErrInvalidEncoding))
			_, err = (&Proof{T: proof.T}).MarshalBinary()
			assert.True(errors.Is(err, ErrNilInput))
			_, err = (&Proof{T: c.Identity(), S: proof.S}).MarshalProto()
			assert.True(errors.Is(err, ErrInvalidEncoding))

			data := append(append([]byte{}, proof.T.Bytes()...), c.Order().FillBytes(make([]byte, c.ScalarSize()))...)
			_, err = ParseProof(c, data)
			assert.True(errors.Is(err, ErrInvalidEncoding))
		})
	}
}

func TestProofProto(t *testing.T) {
	for _, c := range Curves() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			assert := assert.New(t)
			g := c.Generator()
			proof, y := newTestProof(t, c)

			data, err := proof.MarshalProto()
			assert.Nil(err)
			decoded, err := UnmarshalProofProto(data)
			assert.Nil(err)
			assert.Equal(c.Name(), decoded.T.Curve().Name())
			assert.True(decoded.Verify("sid", 1, y, g))

			extended := protowire.AppendTag(append([]byte{}, data...), 15, protowire.VarintType)
			extended = protowire.AppendVarint(extended, 42)
			decoded, err = UnmarshalProofProto(extended)
			assert.Nil(err)
			assert.True(decoded.Verify("sid", 1, y, g))

			_, err = UnmarshalProofProto(data[:len(data)-1])
			assert.True(errors.Is(err, ErrInvalidEncoding))
		})
	}
}

func TestProofProtoUnknownCurve(t *testing.T) {
	assert := assert.New(t)
	proof, _ := newTestProof(t, Secp256k1())

	var b []byte
	b = protowire.AppendTag(b, PROOF_FIELD_CURVE, protowire.BytesType)
	b = protowire.AppendString(b, "ed448")
	b = protowire.AppendTag(b, PROOF_FIELD_T, protowire.BytesType)
	b = protowire.AppendBytes(b, proof.T.Bytes())
	b = protowire.AppendTag(b, PROOF_FIELD_S, protowire.BytesType)
	b = protowire.AppendBytes(b, proof.S.Bytes())
	_, err := UnmarshalProofProto(b)
	assert.True(errors.Is(err, ErrUnknownCurve))

	_, err = UnmarshalProofProto(nil)
	assert.True(errors.Is(err, ErrUnknownCurve))
}

func TestProofB58Code(t *testing.T) {
	for _, c := range Curves() {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			assert := assert.New(t)
			g := c.Generator()
			proof, y := newTestProof(t, c)

			code, err := proof.B58Code()
			assert.Nil(err)
			log.Println(c.Name(), "proof code:", code)

			decoded, err := DecodeProofB58(code)
			assert.Nil(err)
			assert.True(decoded.Verify("sid", 1, y, g))

			raw := base58.Decode(code)
			raw[len(raw)-1] ^= 0x01
			_, err = DecodeProofB58(base58.Encode(raw))
			assert.True(errors.Is(err, ErrInvalidEncoding))

			_, err = DecodeProofB58("1")
			assert.True(errors.Is(err, ErrInvalidEncoding))
		})
	}
}
