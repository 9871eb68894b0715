package dlog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/btcsuite/btcutil/base58"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the Proof protobuf message.
const (
	PROOF_FIELD_CURVE = 1
	PROOF_FIELD_T     = 2
	PROOF_FIELD_S     = 3
)

// MarshalBinary encodes the proof as T (uncompressed) || S (big-endian).
func (p *Proof) MarshalBinary() ([]byte, error) {
	if p == nil || p.T == nil || p.S == nil {
		return nil, ErrNilInput
	}
	if p.T.IsIdentity() {
		return nil, fmt.Errorf("%w: identity commitment", ErrInvalidEncoding)
	}
	return append(p.T.Bytes(), p.S.Bytes()...), nil
}

func ParseProof(c Curve, data []byte) (*Proof, error) {
	if len(data) != c.PointSize()+c.ScalarSize() {
		return nil, fmt.Errorf("%w: %s proof length %d", ErrInvalidEncoding, c.Name(), len(data))
	}
	return parseProof(c, data[:c.PointSize()], data[c.PointSize():])
}

// parseProof only accepts the exact encodings MarshalBinary produces, so
// distinct byte strings never decode to the same proof.
func parseProof(c Curve, tb, sb []byte) (*Proof, error) {
	t, err := c.PointFromBytes(tb)
	if err != nil {
		return nil, err
	}
	if t.IsIdentity() || !bytes.Equal(t.Bytes(), tb) {
		return nil, fmt.Errorf("%w: %s commitment", ErrInvalidEncoding, c.Name())
	}
	s, err := c.ScalarFromBytes(sb)
	if err != nil {
		return nil, err
	}
	return &Proof{T: t, S: s}, nil
}

func (p *Proof) MarshalProto() ([]byte, error) {
	if p == nil || p.T == nil || p.S == nil {
		return nil, ErrNilInput
	}
	if p.T.IsIdentity() {
		return nil, fmt.Errorf("%w: identity commitment", ErrInvalidEncoding)
	}
	var b []byte
	b = protowire.AppendTag(b, PROOF_FIELD_CURVE, protowire.BytesType)
	b = protowire.AppendString(b, p.T.Curve().Name())
	b = protowire.AppendTag(b, PROOF_FIELD_T, protowire.BytesType)
	b = protowire.AppendBytes(b, p.T.Bytes())
	b = protowire.AppendTag(b, PROOF_FIELD_S, protowire.BytesType)
	b = protowire.AppendBytes(b, p.S.Bytes())
	return b, nil
}

func UnmarshalProofProto(data []byte) (*Proof, error) {
	var name string
	var tb, sb []byte
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == PROOF_FIELD_CURVE && typ == protowire.BytesType:
			name, n = protowire.ConsumeString(data)
		case num == PROOF_FIELD_T && typ == protowire.BytesType:
			tb, n = protowire.ConsumeBytes(data)
		case num == PROOF_FIELD_S && typ == protowire.BytesType:
			sb, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, protowire.ParseError(n))
		}
		data = data[n:]
	}

	c, err := CurveByName(name)
	if err != nil {
		return nil, err
	}
	return parseProof(c, tb, sb)
}

// B58Code is the printable form: base58(crc32 little-endian || protobuf bytes).
func (p *Proof) B58Code() (string, error) {
	data, err := p.MarshalProto()
	if err != nil {
		return "", err
	}

	bytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(bytes, crc32.ChecksumIEEE(data))
	bytes = append(bytes, data...)
	return base58.Encode(bytes), nil
}

func DecodeProofB58(code string) (*Proof, error) {
	data := base58.Decode(code)
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: proof code %s", ErrInvalidEncoding, code)
	}
	sum := make([]byte, 4)
	binary.LittleEndian.PutUint32(sum, crc32.ChecksumIEEE(data[4:]))
	if !bytes.Equal(sum, data[:4]) {
		return nil, fmt.Errorf("%w: proof code checksum %s", ErrInvalidEncoding, code)
	}
	return UnmarshalProofProto(data[4:])
}
