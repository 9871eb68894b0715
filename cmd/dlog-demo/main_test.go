package main

import (
	"encoding/hex"
	"testing"

	dlog "github.com/MixinNetwork/dlog-go"
	"github.com/stretchr/testify/assert"
)

func TestFormatPoint(t *testing.T) {
	assert := assert.New(t)

	curve := dlog.Secp256k1()
	g := curve.Generator().Bytes()
	assert.Equal("("+hex.EncodeToString(g[1:33])+", "+hex.EncodeToString(g[33:])+")", formatPoint(curve, curve.Generator()))
	assert.Equal("00", formatPoint(curve, curve.Identity()))

	p256 := dlog.P256()
	assert.Equal("00", formatPoint(p256, p256.Identity()))

	r := dlog.Ristretto255()
	assert.Equal(hex.EncodeToString(r.Generator().Bytes()), formatPoint(r, r.Generator()))
}
