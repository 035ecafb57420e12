// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Package edwards implements Ed25519 public key computation as a
// constraint system gadget: scalar clamping, fixed-base scalar
// multiplication on the twisted Edwards curve, and canonical point
// encoding.
//
// The curve's base field 2^255 - 19 differs from the proving system's
// native field, so all coordinate arithmetic is emulated: field elements
// are fixed-width limb arrays with per-limb range checks and modular
// reduction constraints, provided by gnark's std/math/emulated. This
// makes the package by far the most constraint-expensive part of the
// circuit.
package edwards

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/uints"
)

// ScalarBits is the width of a clamped Ed25519 scalar.
const ScalarBits = 256

// Point is an affine point on the curve with coordinates in the emulated
// base field.
type Point struct {
	X, Y emulated.Element[Ed25519Fp]
}

// Curve is the Ed25519 gadget. Construct it with NewCurve and share one
// instance per circuit definition; it owns the emulated field and the
// fixed-base multiple table.
type Curve struct {
	api  frontend.API
	uapi *uints.BinaryField[uints.U64]
	fp   *emulated.Field[Ed25519Fp]
	d    emulated.Element[Ed25519Fp]

	// table[i] holds 2^i·B in affine coordinates, precomputed with
	// big-integer arithmetic at circuit construction time. The entries
	// enter the circuit as constants, so fixed-base multiplication needs
	// no in-circuit doublings.
	table [ScalarBits]struct{ x, y *big.Int }
}

// NewCurve returns an Ed25519 gadget bound to the circuit builder.
func NewCurve(api frontend.API, uapi *uints.BinaryField[uints.U64]) (*Curve, error) {
	fp, err := emulated.NewField[Ed25519Fp](api)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		api:  api,
		uapi: uapi,
		fp:   fp,
		d:    emulated.ValueOf[Ed25519Fp](curveD),
	}

	x, y := new(big.Int).Set(baseX), new(big.Int).Set(baseY)
	for i := 0; i < ScalarBits; i++ {
		c.table[i].x, c.table[i].y = x, y
		x, y = addAffine(x, y, x, y)
	}
	return c, nil
}

// Add returns p + q using the unified twisted Edwards addition law:
//
//	x3 = (x1·y2 + y1·x2) / (1 + d·x1·x2·y1·y2)
//	y3 = (y1·y2 + x1·x2) / (1 - d·x1·x2·y1·y2)
//
// For Ed25519 (a = -1 a square, d a non-square) the law is complete: the
// denominators are provably non-zero for any pair of curve points, so the
// same constraints cover addition, doubling and the identity.
func (c *Curve) Add(p, q *Point) *Point {
	x1x2 := c.fp.Mul(&p.X, &q.X)
	y1y2 := c.fp.Mul(&p.Y, &q.Y)
	x1y2 := c.fp.Mul(&p.X, &q.Y)
	y1x2 := c.fp.Mul(&p.Y, &q.X)
	dt := c.fp.Mul(&c.d, c.fp.Mul(x1x2, y1y2))

	one := c.fp.One()
	x3 := c.fp.Div(c.fp.Add(x1y2, y1x2), c.fp.Add(one, dt))
	y3 := c.fp.Div(c.fp.Add(y1y2, x1x2), c.fp.Sub(one, dt))
	return &Point{X: *x3, Y: *y3}
}

// Select returns p if b is 1 and q otherwise. b must be boolean
// constrained by the caller.
func (c *Curve) Select(b frontend.Variable, p, q *Point) *Point {
	return &Point{
		X: *c.fp.Select(b, &p.X, &q.X),
		Y: *c.fp.Select(b, &p.Y, &q.Y),
	}
}

// AssertIsOnCurve constrains -x² + y² = 1 + d·x²·y².
func (c *Curve) AssertIsOnCurve(p *Point) {
	xx := c.fp.Mul(&p.X, &p.X)
	yy := c.fp.Mul(&p.Y, &p.Y)
	lhs := c.fp.Sub(yy, xx)
	rhs := c.fp.Add(c.fp.One(), c.fp.Mul(&c.d, c.fp.Mul(xx, yy)))
	c.fp.AssertIsEqual(lhs, rhs)
}

// baseMultiple returns 2^i·B as a constant point.
func (c *Curve) baseMultiple(i int) *Point {
	return &Point{
		X: emulated.ValueOf[Ed25519Fp](c.table[i].x),
		Y: emulated.ValueOf[Ed25519Fp](c.table[i].y),
	}
}

// ScalarMulBase returns bits·B, where bits is the little-endian bit
// vector of a clamped scalar as produced by Clamp. Clamping pins bits 0-2
// and 255 to zero and bit 254 to one, so the loop runs one conditional
// addition per data bit and a single unconditional addition for bit 254.
// The result is additionally constrained to satisfy the curve equation.
func (c *Curve) ScalarMulBase(bits []frontend.Variable) *Point {
	if len(bits) != ScalarBits {
		panic("edwards: scalar must be 256 bits")
	}

	// Neutral element (0, 1); the unified addition law handles it.
	acc := &Point{X: *c.fp.Zero(), Y: *c.fp.One()}
	for i := 3; i < 254; i++ {
		sum := c.Add(acc, c.baseMultiple(i))
		acc = c.Select(bits[i], sum, acc)
	}
	acc = c.Add(acc, c.baseMultiple(254))

	c.AssertIsOnCurve(acc)
	return acc
}
