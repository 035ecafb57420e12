// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

package circuit

import (
	"errors"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/uints"
)

var (
	// ErrSeedSize is returned when the seed is not exactly 64 bytes.
	ErrSeedSize = errors.New("seed must be exactly 64 bytes")
	// ErrPathDepth is returned when a derivation path does not have exactly 4 indices.
	ErrPathDepth = errors.New("derivation path must have exactly 4 indices")
	// ErrIndexRange is returned when a path index already carries the hardened offset.
	ErrIndexRange = errors.New("derivation index must be below 2^31")
	// ErrPublicKeySize is returned when a public key is not exactly 32 bytes.
	ErrPublicKeySize = errors.New("public key must be exactly 32 bytes")
)

// NewAssignment validates the inputs and builds a witness assignment for
// the circuit. Shape errors are rejected here, before any constraint
// evaluation: a malformed input is a caller bug, not an unsatisfiable
// witness.
func NewAssignment(seed []byte, path1, path2 []uint32, pubKey1, pubKey2 []byte) (*Circuit, error) {
	if len(seed) != SeedSize {
		return nil, ErrSeedSize
	}
	if len(pubKey1) != PublicKeySize || len(pubKey2) != PublicKeySize {
		return nil, ErrPublicKeySize
	}

	a := &Circuit{}
	for i, b := range seed {
		a.Seed[i] = uints.NewU8(b)
	}
	for i, b := range pubKey1 {
		a.PubKey1[i] = uints.NewU8(b)
	}
	for i, b := range pubKey2 {
		a.PubKey2[i] = uints.NewU8(b)
	}

	if err := assignPath(a.Path1[:], path1); err != nil {
		return nil, err
	}
	if err := assignPath(a.Path2[:], path2); err != nil {
		return nil, err
	}
	return a, nil
}

func assignPath(dst []frontend.Variable, path []uint32) error {
	if len(path) != PathDepth {
		return ErrPathDepth
	}
	for i, index := range path {
		if index >= 1<<31 {
			return ErrIndexRange
		}
		dst[i] = index
	}
	return nil
}
