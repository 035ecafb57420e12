// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Package slip10 implements the SLIP-0010 private key derivation scheme
// for Ed25519, outside the constraint system.
//
// It is the reference against which the circuit gadgets are tested, and
// the tool callers use to compute the true public keys that become the
// circuit's public inputs. Only hardened derivation exists for Ed25519;
// the logical unhardened index is offset by 2^31 before serialization.
package slip10

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/pkg/errors"
)

const (
	// SeedMinSize is the minimum seed size in bytes.
	SeedMinSize = 16
	// SeedMaxSize is the maximum seed size in bytes. The proving circuit
	// is shaped for exactly this size.
	SeedMaxSize = 64
	// KeySize is the private key size in bytes.
	KeySize = 32
	// ChainCodeSize is the chain code size in bytes.
	ChainCodeSize = 32
	// HardenedOffset is the index offset marking hardened derivation.
	HardenedOffset = uint32(1) << 31
)

// masterHMACKey is the HMAC key for master key derivation, per SLIP-0010.
var masterHMACKey = []byte("ed25519 seed")

// KeyMaterial is one derivation level: a private key and the chain code
// that keys the next level's HMAC.
type KeyMaterial struct {
	Key       [KeySize]byte
	ChainCode [ChainCodeSize]byte
}

// NewMasterKey derives the level-0 key material from a seed:
// HMAC-SHA512(key="ed25519 seed", data=seed), digest split 32/32.
func NewMasterKey(seed []byte) (KeyMaterial, error) {
	if len(seed) < SeedMinSize || len(seed) > SeedMaxSize {
		return KeyMaterial{}, errors.Errorf("slip10: seed must be %d to %d bytes, got %d",
			SeedMinSize, SeedMaxSize, len(seed))
	}
	mac := hmac.New(sha512.New, masterHMACKey)
	_, _ = mac.Write(seed)
	return split(mac.Sum(nil)), nil
}

// NewChildKey derives the hardened child of parent at the given logical
// unhardened index: HMAC-SHA512(key=parent chain code,
// data=0x00 || parent key || ser32(index + 2^31)). Indices carrying the
// hardened offset already are rejected rather than wrapped.
func NewChildKey(parent KeyMaterial, index uint32) (KeyMaterial, error) {
	if index >= HardenedOffset {
		return KeyMaterial{}, errors.Errorf("slip10: index %d already carries the hardened offset", index)
	}

	var data [1 + KeySize + 4]byte
	copy(data[1:], parent.Key[:])
	binary.BigEndian.PutUint32(data[1+KeySize:], index+HardenedOffset)

	mac := hmac.New(sha512.New, parent.ChainCode[:])
	_, _ = mac.Write(data[:])
	return split(mac.Sum(nil)), nil
}

// DerivePath walks the hardened path from the master key of seed down to
// the leaf key material.
func DerivePath(seed []byte, path []uint32) (KeyMaterial, error) {
	k, err := NewMasterKey(seed)
	if err != nil {
		return KeyMaterial{}, err
	}
	for i, index := range path {
		if k, err = NewChildKey(k, index); err != nil {
			return KeyMaterial{}, errors.Wrapf(err, "level %d", i+1)
		}
	}
	return k, nil
}

// PublicKey returns the Ed25519 public key for the key material, using
// the derived private key as a standard Ed25519 seed.
func (k KeyMaterial) PublicKey() []byte {
	priv := ed25519.NewKeyFromSeed(k.Key[:])
	return priv.Public().(ed25519.PublicKey)
}

// split cuts a 64-byte HMAC digest into (key, chain code).
func split(digest []byte) KeyMaterial {
	var k KeyMaterial
	copy(k.Key[:], digest[:KeySize])
	copy(k.ChainCode[:], digest[KeySize:])
	return k
}
