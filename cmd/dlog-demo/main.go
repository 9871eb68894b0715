package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	dlog "github.com/MixinNetwork/dlog-go"
)

func main() {
	sid := "sid"
	pid := int32(1)

	curve := dlog.Secp256k1()
	basePoint := curve.Generator()
	x, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		log.Fatalln("random scalar:", err)
	}
	y := basePoint.Mul(x)

	startProof := time.Now()
	proof, err := dlog.Prove(sid, pid, x, y, basePoint)
	if err != nil {
		log.Fatalln("prove:", err)
	}
	fmt.Printf("Proof computation time: %d ms\n", time.Since(startProof).Milliseconds())

	fmt.Printf("t: %s\n", formatPoint(curve, proof.T))
	fmt.Printf("s: %s\n", hex.EncodeToString(proof.S.Bytes()))
	if code, err := proof.B58Code(); err == nil {
		fmt.Printf("proof: %s\n", code)
	}

	startVerify := time.Now()
	result := proof.Verify(sid, pid, y, basePoint)
	fmt.Printf("Verify computation time: %d ms\n", time.Since(startVerify).Milliseconds())

	if result {
		fmt.Println("DLOG proof is correct")
	} else {
		fmt.Println("DLOG proof is not correct")
	}
}

// formatPoint prints an uncompressed SEC1 point as its (x, y) coordinates and
// anything else as plain hex.
func formatPoint(curve dlog.Curve, p dlog.Point) string {
	b := p.Bytes()
	if len(b) != curve.PointSize() || len(b)%2 != 1 || b[0] != 0x04 {
		return hex.EncodeToString(b)
	}
	half := 1 + len(b)/2
	return fmt.Sprintf("(%s, %s)", hex.EncodeToString(b[1:half]), hex.EncodeToString(b[half:]))
}
