// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Package sha512 implements the SHA-512 hash function as a constraint
// system gadget.
//
// The gadget operates on fixed-length messages only: a constraint system
// has static structure, so the message length — and with it the padding
// and the number of compression blocks — is decided at circuit
// construction time. Callers that need several message lengths invoke Sum
// once per length; the word arithmetic is shared through a common
// uints.BinaryField instance.
package sha512

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

const (
	// Size is the digest size in bytes.
	Size = 64
	// BlockSize is the compression block size in bytes.
	BlockSize = 128
)

// Digest is a SHA-512 gadget bound to a circuit builder. The zero value
// is not usable; construct it with New and share one instance per circuit
// definition.
type Digest struct {
	api  frontend.API
	uapi *uints.BinaryField[uints.U64]
}

// New returns a SHA-512 gadget operating on the given 64-bit word field.
func New(api frontend.API, uapi *uints.BinaryField[uints.U64]) *Digest {
	return &Digest{api: api, uapi: uapi}
}

// Sum computes the SHA-512 digest of data. The length of data is fixed at
// circuit construction time; the standard length-appended padding is
// emitted as constant bytes.
func (d *Digest) Sum(data []uints.U8) []uints.U8 {
	padded := pad(data)

	h := make([]uints.U64, 8)
	for i := range h {
		h[i] = uints.NewU64(_iv[i])
	}

	for block := 0; block < len(padded); block += BlockSize {
		var m [16]uints.U64
		for i := 0; i < 16; i++ {
			m[i] = d.uapi.PackMSB(padded[block+8*i : block+8*i+8]...)
		}
		h = d.compress(h, m)
	}

	out := make([]uints.U8, 0, Size)
	for i := range h {
		out = append(out, d.uapi.UnpackMSB(h[i])...)
	}
	return out
}

// pad appends the FIPS 180-4 padding: a 0x80 byte, zero bytes to 112 mod
// 128, then the message bit length as a 128-bit big-endian integer. All
// appended bytes are constants.
func pad(data []uints.U8) []uints.U8 {
	l := len(data)
	zeros := (BlockSize - (l+1+16)%BlockSize) % BlockSize

	padded := make([]uints.U8, 0, l+1+zeros+16)
	padded = append(padded, data...)
	padded = append(padded, uints.NewU8(0x80))
	for i := 0; i < zeros; i++ {
		padded = append(padded, uints.NewU8(0))
	}
	// Message lengths here are far below 2^64 bits, so the upper half of
	// the 128-bit length is always zero.
	bitLen := uint64(l) * 8
	for i := 0; i < 8; i++ {
		padded = append(padded, uints.NewU8(0))
	}
	for i := 7; i >= 0; i-- {
		padded = append(padded, uints.NewU8(uint8(bitLen>>(8*uint(i)))))
	}
	return padded
}

// compress runs the 80-round SHA-512 compression function on one block.
func (d *Digest) compress(h []uints.U64, m [16]uints.U64) []uints.U64 {
	uapi := d.uapi

	// Message schedule expansion.
	var w [80]uints.U64
	copy(w[:], m[:])
	for i := 16; i < 80; i++ {
		// sigma0 = ROTR^1 xor ROTR^8 xor SHR^7
		s0 := uapi.Xor(
			uapi.Lrot(w[i-15], -1),
			uapi.Lrot(w[i-15], -8),
			uapi.Rshift(w[i-15], 7),
		)
		// sigma1 = ROTR^19 xor ROTR^61 xor SHR^6
		s1 := uapi.Xor(
			uapi.Lrot(w[i-2], -19),
			uapi.Lrot(w[i-2], -61),
			uapi.Rshift(w[i-2], 6),
		)
		w[i] = uapi.Add(w[i-16], s0, w[i-7], s1)
	}

	a, b, c, dd := h[0], h[1], h[2], h[3]
	e, f, g, hh := h[4], h[5], h[6], h[7]

	for i := 0; i < 80; i++ {
		// Sigma1 = ROTR^14 xor ROTR^18 xor ROTR^41
		S1 := uapi.Xor(
			uapi.Lrot(e, -14),
			uapi.Lrot(e, -18),
			uapi.Lrot(e, -41),
		)
		ch := uapi.Xor(uapi.And(e, f), uapi.And(uapi.Not(e), g))
		t1 := uapi.Add(hh, S1, ch, uints.NewU64(_k[i]), w[i])
		// Sigma0 = ROTR^28 xor ROTR^34 xor ROTR^39
		S0 := uapi.Xor(
			uapi.Lrot(a, -28),
			uapi.Lrot(a, -34),
			uapi.Lrot(a, -39),
		)
		maj := uapi.Xor(uapi.And(a, b), uapi.And(a, c), uapi.And(b, c))
		t2 := uapi.Add(S0, maj)

		hh = g
		g = f
		f = e
		e = uapi.Add(dd, t1)
		dd = c
		c = b
		b = a
		a = uapi.Add(t1, t2)
	}

	return []uints.U64{
		uapi.Add(h[0], a), uapi.Add(h[1], b), uapi.Add(h[2], c), uapi.Add(h[3], dd),
		uapi.Add(h[4], e), uapi.Add(h[5], f), uapi.Add(h[6], g), uapi.Add(h[7], hh),
	}
}
