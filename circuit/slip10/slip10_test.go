// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package slip10_test

import (
	"encoding/hex"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"

	"github.com/ilmoi/prove2pubkeys/circuit/hmac"
	"github.com/ilmoi/prove2pubkeys/circuit/sha512"
	"github.com/ilmoi/prove2pubkeys/circuit/slip10"
	refslip10 "github.com/ilmoi/prove2pubkeys/slip10"
)

// The 64-byte seed from the SLIP-0010 test vector appendix.
var testSeed, _ = hex.DecodeString(
	"fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a2" +
		"9f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542")

type chainCircuit struct {
	Seed [slip10.SeedSize]uints.U8
	Path [4]frontend.Variable

	MasterKey       [slip10.KeySize]uints.U8
	MasterChainCode [slip10.ChainCodeSize]uints.U8
	LeafKey         [slip10.KeySize]uints.U8
	LeafChainCode   [slip10.ChainCodeSize]uints.U8
}

func (c *chainCircuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	hasher := sha512.New(api, uapi)
	deriver := slip10.NewDeriver(api, uapi, hmac.New(api, uapi, hasher))

	master := deriver.Master(c.Seed)
	leaf := deriver.DeriveChain(master, c.Path[:])

	for i := 0; i < slip10.KeySize; i++ {
		uapi.ByteAssertEq(master.Key[i], c.MasterKey[i])
		uapi.ByteAssertEq(master.ChainCode[i], c.MasterChainCode[i])
		uapi.ByteAssertEq(leaf.Key[i], c.LeafKey[i])
		uapi.ByteAssertEq(leaf.ChainCode[i], c.LeafChainCode[i])
	}
	return nil
}

func TestChainMatchesReference(t *testing.T) {
	path := []uint32{44, 501, 0, 0}

	master, err := refslip10.NewMasterKey(testSeed)
	if err != nil {
		t.Fatalf("reference master derivation failed: %v", err)
	}
	leaf, err := refslip10.DerivePath(testSeed, path)
	if err != nil {
		t.Fatalf("reference path derivation failed: %v", err)
	}

	circuit := &chainCircuit{}
	assignment := &chainCircuit{}
	copy(assignment.Seed[:], uints.NewU8Array(testSeed))
	for i, index := range path {
		assignment.Path[i] = index
	}
	copy(assignment.MasterKey[:], uints.NewU8Array(master.Key[:]))
	copy(assignment.MasterChainCode[:], uints.NewU8Array(master.ChainCode[:]))
	copy(assignment.LeafKey[:], uints.NewU8Array(leaf.Key[:]))
	copy(assignment.LeafChainCode[:], uints.NewU8Array(leaf.ChainCode[:]))

	if err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("derivation chain does not match reference: %v", err)
	}
}

type childCircuit struct {
	ParentKey       [slip10.KeySize]uints.U8
	ParentChainCode [slip10.ChainCodeSize]uints.U8
	Index           frontend.Variable

	ChildKey       [slip10.KeySize]uints.U8
	ChildChainCode [slip10.ChainCodeSize]uints.U8
}

func (c *childCircuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	hasher := sha512.New(api, uapi)
	deriver := slip10.NewDeriver(api, uapi, hmac.New(api, uapi, hasher))

	var parent slip10.KeyMaterial
	copy(parent.Key[:], c.ParentKey[:])
	copy(parent.ChainCode[:], c.ParentChainCode[:])

	child := deriver.ChildKey(parent, c.Index)
	for i := 0; i < slip10.KeySize; i++ {
		uapi.ByteAssertEq(child.Key[i], c.ChildKey[i])
		uapi.ByteAssertEq(child.ChainCode[i], c.ChildChainCode[i])
	}
	return nil
}

// TestChildStep exercises a single hardened derivation step, including
// the boundary index 2^31 - 1.
func TestChildStep(t *testing.T) {
	master, err := refslip10.NewMasterKey(testSeed)
	if err != nil {
		t.Fatalf("reference master derivation failed: %v", err)
	}

	for _, index := range []uint32{0, 1, 44, 1<<31 - 1} {
		child, err := refslip10.NewChildKey(master, index)
		if err != nil {
			t.Fatalf("reference child derivation failed for index %d: %v", index, err)
		}

		circuit := &childCircuit{}
		assignment := &childCircuit{Index: index}
		copy(assignment.ParentKey[:], uints.NewU8Array(master.Key[:]))
		copy(assignment.ParentChainCode[:], uints.NewU8Array(master.ChainCode[:]))
		copy(assignment.ChildKey[:], uints.NewU8Array(child.Key[:]))
		copy(assignment.ChildChainCode[:], uints.NewU8Array(child.ChainCode[:]))

		if err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err != nil {
			t.Fatalf("child step mismatch for index %d: %v", index, err)
		}
	}
}

// TestHardenedIndexRangeCheck verifies that an index carrying the
// hardened offset cannot satisfy the 31-bit decomposition.
func TestHardenedIndexRangeCheck(t *testing.T) {
	master, err := refslip10.NewMasterKey(testSeed)
	if err != nil {
		t.Fatalf("reference master derivation failed: %v", err)
	}
	child, err := refslip10.NewChildKey(master, 0)
	if err != nil {
		t.Fatalf("reference child derivation failed: %v", err)
	}

	circuit := &childCircuit{}
	assignment := &childCircuit{Index: uint64(1) << 31}
	copy(assignment.ParentKey[:], uints.NewU8Array(master.Key[:]))
	copy(assignment.ParentChainCode[:], uints.NewU8Array(master.ChainCode[:]))
	copy(assignment.ChildKey[:], uints.NewU8Array(child.Key[:]))
	copy(assignment.ChildChainCode[:], uints.NewU8Array(child.ChainCode[:]))

	if err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err == nil {
		t.Fatal("index with hardened offset satisfied the circuit")
	}
}
