// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package edwards

import "math/big"

// Ed25519 curve parameters. The curve is the twisted Edwards curve
// -x² + y² = 1 + d·x²·y² over GF(2^255 - 19). Coordinate arithmetic runs
// in this field, which is not the proving system's native field; inside
// the circuit it is emulated via limb decomposition (see Ed25519Fp),
// while the fixed-base table below is computed with math/big at circuit
// construction time.
var (
	// fieldPrime is the base field modulus 2^255 - 19.
	fieldPrime, _ = new(big.Int).SetString(
		"57896044618658097711785492504343953926634992332820282019728792003956564819949", 10)

	// curveD is the twisted Edwards d parameter, -121665/121666 mod p.
	curveD, _ = new(big.Int).SetString(
		"37095705934669439343138083508754565189542113879843219016388785533085940283555", 10)

	// baseX, baseY are the affine coordinates of the standard Ed25519
	// base point B (the point with y = 4/5 and even x).
	baseX, _ = new(big.Int).SetString(
		"15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
	baseY, _ = new(big.Int).SetString(
		"46316835694926478169428394003475163141307993866256225615783033603165251855960", 10)
)

// Ed25519Fp implements emulated.FieldParams for the Ed25519 base field,
// 2^255 - 19 represented as four 64-bit limbs.
type Ed25519Fp struct{}

// NbLimbs returns the number of limbs in the representation.
func (Ed25519Fp) NbLimbs() uint { return 4 }

// BitsPerLimb returns the width of a single limb.
func (Ed25519Fp) BitsPerLimb() uint { return 64 }

// IsPrime indicates that the modulus is prime.
func (Ed25519Fp) IsPrime() bool { return true }

// Modulus returns the field modulus 2^255 - 19.
func (Ed25519Fp) Modulus() *big.Int { return new(big.Int).Set(fieldPrime) }

func fAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), fieldPrime)
}

func fSub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), fieldPrime)
}

func fMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), fieldPrime)
}

func fInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, fieldPrime)
}

// addAffine adds two affine points over the big-integer field. It is used
// only to precompute the fixed-base multiple table at circuit
// construction time; in-circuit point arithmetic lives in curve.go.
func addAffine(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	one := big.NewInt(1)
	x1x2 := fMul(x1, x2)
	y1y2 := fMul(y1, y2)
	x1y2 := fMul(x1, y2)
	y1x2 := fMul(y1, x2)
	dt := fMul(curveD, fMul(x1x2, y1y2))

	x3 := fMul(fAdd(x1y2, y1x2), fInv(fAdd(one, dt)))
	y3 := fMul(fAdd(y1y2, x1x2), fInv(fSub(one, dt)))
	return x3, y3
}
