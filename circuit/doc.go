// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.
//
// Package circuit composes the derivation and curve gadgets into the
// top-level constraint system.
//
// The circuit proves, without revealing the master seed, that two Ed25519
// public keys are both derived from that seed via two distinct 4-level
// hardened SLIP-0010 paths:
//
//   - one master key derivation from the 64-byte secret seed,
//   - per path, four hardened child derivation steps,
//   - per path, Ed25519 key generation from the level-4 private key
//     (SHA-512 expansion, scalar clamping, fixed-base scalar
//     multiplication, canonical point encoding),
//   - per path, 32 byte-equality constraints binding the computed key to
//     the externally supplied public key.
//
// There is no output signal: the only observable result is whether the
// constraint system is satisfiable with a given witness. A mismatched
// seed, path or public key makes proof generation fail; it never yields a
// proof of a negative statement.
package circuit
