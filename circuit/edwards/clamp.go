// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package edwards

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/ilmoi/prove2pubkeys/circuit/bitcodec"
)

// Clamp applies the Ed25519 private-scalar clamping rule to a 32-byte key
// and returns the scalar as a little-endian bit vector: bits 0-2 cleared,
// bit 254 set, bit 255 cleared, independent of the input. The fixed bits
// are replaced by constants rather than masked, so the output positions
// hold exactly the mandated values; the remaining bits come from the
// boolean-constrained decomposition of the key bytes.
func Clamp(api frontend.API, key [32]uints.U8) []frontend.Variable {
	bits := bitcodec.ToBitsLE(api, key[:])
	bits[0] = 0
	bits[1] = 0
	bits[2] = 0
	bits[254] = 1
	bits[255] = 0
	return bits
}
