// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.
//
// Byte/bit packing gadgets shared by the hash and curve circuits.

// Package bitcodec converts byte strings to and from bit vectors inside a
// constraint system.
//
// The primary convention is big-endian: bits are emitted MSB-first within
// each byte, with bytes kept in order. This is the convention used by the
// SHA-512 message schedule and by SLIP-0010 index serialization. The
// little-endian variants exist for the Ed25519 scalar and point encodings,
// which are little-endian by specification.
//
// Every emitted bit is boolean-constrained, and every reconstructed byte
// is range-checked to 8 bits.
package bitcodec

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

// ToBitsBE unpacks bytes into a bit vector, MSB first within each byte,
// bytes in order. The result has 8*len(in) entries.
func ToBitsBE(api frontend.API, in []uints.U8) []frontend.Variable {
	bits := make([]frontend.Variable, 0, 8*len(in))
	for _, b := range in {
		bb := api.ToBinary(b.Val, 8)
		for i := 7; i >= 0; i-- {
			bits = append(bits, bb[i])
		}
	}
	return bits
}

// FromBitsBE packs a bit vector produced under the big-endian convention
// back into bytes. The length of bits must be a multiple of 8.
func FromBitsBE(api frontend.API, uapi *uints.BinaryField[uints.U64], bits []frontend.Variable) []uints.U8 {
	if len(bits)%8 != 0 {
		panic(fmt.Sprintf("bitcodec: bit vector length %d is not a multiple of 8", len(bits)))
	}
	out := make([]uints.U8, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		var le [8]frontend.Variable
		for j := 0; j < 8; j++ {
			le[j] = bits[i+7-j]
		}
		out = append(out, uapi.ByteValueOf(api.FromBinary(le[:]...)))
	}
	return out
}

// ToBitsLE unpacks bytes into a bit vector, LSB first within each byte,
// bytes in order. Interpreting the input as a little-endian integer, bit i
// of the result is bit i of that integer (the Ed25519 scalar convention).
func ToBitsLE(api frontend.API, in []uints.U8) []frontend.Variable {
	bits := make([]frontend.Variable, 0, 8*len(in))
	for _, b := range in {
		bits = append(bits, api.ToBinary(b.Val, 8)...)
	}
	return bits
}

// FromBitsLE packs a bit vector produced under the little-endian
// convention back into bytes. The length of bits must be a multiple of 8.
func FromBitsLE(api frontend.API, uapi *uints.BinaryField[uints.U64], bits []frontend.Variable) []uints.U8 {
	if len(bits)%8 != 0 {
		panic(fmt.Sprintf("bitcodec: bit vector length %d is not a multiple of 8", len(bits)))
	}
	out := make([]uints.U8, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		out = append(out, uapi.ByteValueOf(api.FromBinary(bits[i:i+8]...)))
	}
	return out
}
