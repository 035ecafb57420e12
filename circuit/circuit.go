// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package circuit

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"

	"github.com/ilmoi/prove2pubkeys/circuit/edwards"
	"github.com/ilmoi/prove2pubkeys/circuit/hmac"
	"github.com/ilmoi/prove2pubkeys/circuit/sha512"
	"github.com/ilmoi/prove2pubkeys/circuit/slip10"
)

const (
	// SeedSize is the secret master seed size in bytes.
	SeedSize = slip10.SeedSize
	// PathDepth is the fixed number of hardened derivation levels per path.
	PathDepth = 4
	// PublicKeySize is the size of an encoded Ed25519 public key in bytes.
	PublicKeySize = edwards.EncodedSize
)

// Circuit proves that PubKey1 and PubKey2 are the Ed25519 public keys
// derived from the secret Seed via the hardened paths Path1 and Path2.
//
// Public inputs appear in wire order: PubKey1, PubKey2, Path1, Path2.
// Path entries are logical unhardened indices; the hardened offset is
// applied inside the derivation gadget, and the 31-bit decomposition
// there range-checks each entry.
type Circuit struct {
	PubKey1 [PublicKeySize]uints.U8      `gnark:",public"`
	PubKey2 [PublicKeySize]uints.U8      `gnark:",public"`
	Path1   [PathDepth]frontend.Variable `gnark:",public"`
	Path2   [PathDepth]frontend.Variable `gnark:",public"`

	// Seed is the secret witness: the 64-byte master seed.
	Seed [SeedSize]uints.U8
}

// Define builds the constraint system. All gadget state is constructed
// here and passed down explicitly; nothing is process-global.
func (c *Circuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	hasher := sha512.New(api, uapi)
	mac := hmac.New(api, uapi, hasher)
	deriver := slip10.NewDeriver(api, uapi, mac)
	curve, err := edwards.NewCurve(api, uapi)
	if err != nil {
		return err
	}

	// The master key material is computed once; the two chains below only
	// read it.
	master := deriver.Master(c.Seed)

	chains := []struct {
		path   [PathDepth]frontend.Variable
		pubKey [PublicKeySize]uints.U8
	}{
		{c.Path1, c.PubKey1},
		{c.Path2, c.PubKey2},
	}

	for _, chain := range chains {
		leaf := deriver.DeriveChain(master, chain.path[:])

		// Standard Ed25519 key generation from the level-4 private key:
		// the key is expanded with SHA-512 and the lower 32 bytes of the
		// digest become the scalar to clamp. Skipping the expansion would
		// diverge from every SLIP-0010/Ed25519 implementation in the wild.
		expanded := hasher.Sum(leaf.Key[:])
		var scalarKey [32]uints.U8
		copy(scalarKey[:], expanded[:32])

		scalarBits := edwards.Clamp(api, scalarKey)
		point := curve.ScalarMulBase(scalarBits)
		encoded := curve.Encode(point)

		// Hard equality binding: satisfiability itself is the statement,
		// there is no boolean result to ignore.
		for i := range encoded {
			uapi.ByteAssertEq(encoded[i], chain.pubKey[i])
		}
	}
	return nil
}
