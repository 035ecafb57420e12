// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package edwards

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/ilmoi/prove2pubkeys/circuit/bitcodec"
)

// EncodedSize is the size of a compressed point encoding in bytes.
const EncodedSize = 32

// Encode returns the canonical 32-byte compressed encoding of p: the
// little-endian y coordinate with its top bit replaced by the parity of
// x. Both coordinates are decomposed with ToBitsCanonical, which
// constrains the 255-bit representation to the unique value below the
// modulus. A plain Reduce would not do: division results are
// hint-supplied and may sit anywhere in [0, 2p), so non-canonical bits
// would let a prover shift y by p and flip the parity bit at will.
func (c *Curve) Encode(p *Point) [EncodedSize]uints.U8 {
	yBits := c.fp.ToBitsCanonical(&p.Y)
	xBits := c.fp.ToBitsCanonical(&p.X)

	enc := make([]frontend.Variable, 8*EncodedSize)
	copy(enc, yBits)
	enc[8*EncodedSize-1] = xBits[0]

	bytes := bitcodec.FromBitsLE(c.api, c.uapi, enc)

	var out [EncodedSize]uints.U8
	copy(out[:], bytes)
	return out
}
