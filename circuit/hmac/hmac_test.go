// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package hmac_test

import (
	"bytes"
	chmac "crypto/hmac"
	csha512 "crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/test"

	"github.com/ilmoi/prove2pubkeys/circuit/hmac"
	"github.com/ilmoi/prove2pubkeys/circuit/sha512"
)

type hmacCircuit struct {
	Key      []uints.U8
	Msg      []uints.U8
	Expected [sha512.Size]uints.U8
}

func (c *hmacCircuit) Define(api frontend.API) error {
	uapi, err := uints.New[uints.U64](api)
	if err != nil {
		return err
	}
	hasher := sha512.New(api, uapi)
	out := hmac.New(api, uapi, hasher).Sum(c.Key, c.Msg)
	for i := range c.Expected {
		uapi.ByteAssertEq(out[i], c.Expected[i])
	}
	return nil
}

func referenceHMAC(key, msg []byte) []byte {
	mac := chmac.New(csha512.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

func solveHMAC(t *testing.T, key, msg []byte) {
	t.Helper()
	want := referenceHMAC(key, msg)

	circuit := &hmacCircuit{Key: make([]uints.U8, len(key)), Msg: make([]uints.U8, len(msg))}
	assignment := &hmacCircuit{Key: uints.NewU8Array(key), Msg: uints.NewU8Array(msg)}
	copy(assignment.Expected[:], uints.NewU8Array(want))

	if err := test.IsSolved(circuit, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("HMAC mismatch (key %d bytes, msg %d bytes): %v", len(key), len(msg), err)
	}
}

// TestRFC4231Vector1 pins the reference implementation to the published
// HMAC-SHA-512 test vector before the gadget is compared against it.
func TestRFC4231Vector1(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	msg := []byte("Hi There")
	want, _ := hex.DecodeString(
		"87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
			"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854")

	if got := referenceHMAC(key, msg); !bytes.Equal(got, want) {
		t.Fatalf("stdlib HMAC does not match RFC 4231: got %x", got)
	}
	solveHMAC(t, key, msg)
}

func TestShortKey(t *testing.T) {
	// The SLIP-0010 master key: 12 ASCII bytes, zero-padded to the block
	// size rather than hashed.
	solveHMAC(t, []byte("ed25519 seed"), make([]byte, 64))
}

func TestChainCodeKey(t *testing.T) {
	key := make([]byte, 32)
	msg := make([]byte, 37)
	for i := range key {
		key[i] = byte(i + 1)
	}
	for i := range msg {
		msg[i] = byte(0xff - i)
	}
	solveHMAC(t, key, msg)
}

func TestLongKeyIsHashedFirst(t *testing.T) {
	key := bytes.Repeat([]byte{0xaa}, 131)
	msg := []byte("Test Using Larger Than Block-Size Key - Hash Key First")
	solveHMAC(t, key, msg)
}
