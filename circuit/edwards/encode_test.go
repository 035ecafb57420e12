// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package edwards

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"
)

type encodeCircuit struct {
	Expected    [EncodedSize]uints.U8
	ExpectedNeg [EncodedSize]uints.U8
}

func (c *encodeCircuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	curve, err := NewCurve(api, uapi)
	if err != nil {
		return err
	}

	enc := curve.Encode(curve.baseMultiple(0))

	// -B = (p - x, y) has odd x, so only its sign bit differs from B's
	// encoding.
	neg := &Point{
		X: emulated.ValueOf[Ed25519Fp](fSub(big.NewInt(0), baseX)),
		Y: emulated.ValueOf[Ed25519Fp](baseY),
	}
	curve.AssertIsOnCurve(neg)
	encNeg := curve.Encode(neg)

	for i := 0; i < EncodedSize; i++ {
		uapi.ByteAssertEq(enc[i], c.Expected[i])
		uapi.ByteAssertEq(encNeg[i], c.ExpectedNeg[i])
	}
	return nil
}

// TestEncodeSignBit pins Encode to the published compressed form of the
// Ed25519 base point, 0x58 followed by 31 bytes of 0x66, and checks that
// negating the point changes exactly the top bit of the last byte. The y
// bytes must come out canonical (below the modulus) and the parity bit
// must track the canonical x, not some shifted representative.
func TestEncodeSignBit(t *testing.T) {
	var expected, expectedNeg [EncodedSize]byte
	expected[0] = 0x58
	for i := 1; i < EncodedSize; i++ {
		expected[i] = 0x66
	}
	expectedNeg = expected
	expectedNeg[EncodedSize-1] |= 0x80

	circuit := &encodeCircuit{}
	assignment := &encodeCircuit{}
	copy(assignment.Expected[:], uints.NewU8Array(expected[:]))
	copy(assignment.ExpectedNeg[:], uints.NewU8Array(expectedNeg[:]))

	if err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("base point encoding mismatch: %v", err)
	}
}
