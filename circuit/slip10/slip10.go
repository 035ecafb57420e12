// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Package slip10 implements SLIP-0010 hardened key derivation for Ed25519
// as a constraint system gadget.
//
// Only hardened derivation exists: the 2^31 offset is always added to the
// caller-supplied index, exactly as the Ed25519 profile of SLIP-0010
// demands. The chain depth is a circuit-construction-time parameter of
// DeriveChain, not a runtime value.
package slip10

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/ilmoi/prove2pubkeys/circuit/bitcodec"
	"github.com/ilmoi/prove2pubkeys/circuit/hmac"
)

const (
	// SeedSize is the master seed size in bytes.
	SeedSize = 64
	// KeySize is the private key size in bytes.
	KeySize = 32
	// ChainCodeSize is the chain code size in bytes.
	ChainCodeSize = 32

	// indexBits is the width of an unhardened index. Decomposing the index
	// to this many bits doubles as the in-circuit range check.
	indexBits = 31
)

// masterHMACKey is the HMAC key for master key derivation, per SLIP-0010.
var masterHMACKey = []byte("ed25519 seed")

// KeyMaterial is one derivation level: a private key and the chain code
// that keys the next level's HMAC. Both halves are always exactly 32
// bytes, the two halves of an HMAC-SHA512 digest.
type KeyMaterial struct {
	Key       [KeySize]uints.U8
	ChainCode [ChainCodeSize]uints.U8
}

// Deriver is the SLIP-0010 derivation gadget. Construct it with
// NewDeriver and share one instance per circuit definition.
type Deriver struct {
	api  frontend.API
	uapi *uints.BinaryField[uints.U64]
	mac  *hmac.HMAC
}

// NewDeriver returns a derivation gadget using the given HMAC gadget.
func NewDeriver(api frontend.API, uapi *uints.BinaryField[uints.U64], mac *hmac.HMAC) *Deriver {
	return &Deriver{api: api, uapi: uapi, mac: mac}
}

// Master derives the level-0 key material from a 64-byte seed:
// HMAC-SHA512 keyed with the literal ASCII string "ed25519 seed", digest
// split 32/32 into key and chain code.
func (d *Deriver) Master(seed [SeedSize]uints.U8) KeyMaterial {
	digest := d.mac.Sum(uints.NewU8Array(masterHMACKey), seed[:])
	return split(digest)
}

// ChildKey performs one hardened derivation step. index is the logical
// unhardened index; it is decomposed to 31 bits, which constrains
// index < 2^31, and the hardened offset is applied by forcing the top bit
// of the serialized form to 1. The HMAC message is
// 0x00 || parentKey || ser32(index + 2^31), keyed with the parent chain
// code.
func (d *Deriver) ChildKey(parent KeyMaterial, index frontend.Variable) KeyMaterial {
	msg := make([]uints.U8, 0, 1+KeySize+4)
	msg = append(msg, uints.NewU8(0))
	msg = append(msg, parent.Key[:]...)
	msg = append(msg, d.ser32Hardened(index)...)

	digest := d.mac.Sum(parent.ChainCode[:], msg)
	return split(digest)
}

// DeriveChain applies one hardened derivation step per path entry,
// starting from master. The depth is fixed by the length of path at
// circuit construction time.
func (d *Deriver) DeriveChain(master KeyMaterial, path []frontend.Variable) KeyMaterial {
	k := master
	for _, index := range path {
		k = d.ChildKey(k, index)
	}
	return k
}

// ser32Hardened returns the big-endian 4-byte encoding of index + 2^31.
func (d *Deriver) ser32Hardened(index frontend.Variable) []uints.U8 {
	bits := d.api.ToBinary(index, indexBits)
	hardened := make([]frontend.Variable, 32)
	copy(hardened, bits)
	hardened[31] = 1

	le := bitcodec.FromBitsLE(d.api, d.uapi, hardened)
	return []uints.U8{le[3], le[2], le[1], le[0]}
}

// split cuts a 64-byte HMAC digest into (key, chain code).
func split(digest []uints.U8) KeyMaterial {
	var k KeyMaterial
	copy(k.Key[:], digest[:KeySize])
	copy(k.ChainCode[:], digest[KeySize:])
	return k
}
