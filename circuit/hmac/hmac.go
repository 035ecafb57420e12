// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Package hmac implements HMAC-SHA512 as a constraint system gadget.
//
// Both passes run the real SHA-512 gadget; key and message lengths are
// fixed at circuit construction time, so each distinct (key length,
// message length) pair used by a circuit produces its own padded hash
// instances.
package hmac

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/ilmoi/prove2pubkeys/circuit/sha512"
)

// Repeated-byte pad words, RFC 2104. The XOR against the key block is done
// word-wise after packing, which is equivalent to the byte-wise definition.
var (
	ipadWord = uints.NewU64(0x3636363636363636)
	opadWord = uints.NewU64(0x5c5c5c5c5c5c5c5c)
)

// HMAC is an HMAC-SHA512 gadget bound to a circuit builder. Construct it
// with New and share one instance per circuit definition.
type HMAC struct {
	api    frontend.API
	uapi   *uints.BinaryField[uints.U64]
	hasher *sha512.Digest
}

// New returns an HMAC-SHA512 gadget using the given hash gadget for both
// passes.
func New(api frontend.API, uapi *uints.BinaryField[uints.U64], hasher *sha512.Digest) *HMAC {
	return &HMAC{api: api, uapi: uapi, hasher: hasher}
}

// Sum computes HMAC-SHA512(key, msg) = SHA512((K xor opad) || SHA512((K
// xor ipad) || msg)). Keys longer than the 128-byte block are hashed down
// first; shorter keys are zero-padded to the block size. The branch is on
// the static key length, not on witness values.
func (h *HMAC) Sum(key, msg []uints.U8) []uints.U8 {
	if len(key) > sha512.BlockSize {
		key = h.hasher.Sum(key)
	}

	block := make([]uints.U8, sha512.BlockSize)
	for i := range block {
		block[i] = uints.NewU8(0)
	}
	copy(block, key)

	inner := make([]uints.U8, 0, sha512.BlockSize+len(msg))
	outer := make([]uints.U8, 0, sha512.BlockSize+sha512.Size)
	for i := 0; i < sha512.BlockSize; i += 8 {
		kw := h.uapi.PackMSB(block[i : i+8]...)
		inner = append(inner, h.uapi.UnpackMSB(h.uapi.Xor(kw, ipadWord))...)
		outer = append(outer, h.uapi.UnpackMSB(h.uapi.Xor(kw, opadWord))...)
	}

	inner = append(inner, msg...)
	outer = append(outer, h.hasher.Sum(inner)...)
	return h.hasher.Sum(outer)
}
