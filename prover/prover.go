// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Package prover wraps the proving backend around the derivation circuit.
//
// The circuit itself is proving-system-agnostic; this package pins the
// demo backend to Groth16 over BN254. Setup here generates keys from
// local randomness and is suitable for testing only — a production
// deployment would substitute keys from a proper ceremony.
//
// Errors keep their origin visible: a witness that fails to satisfy the
// constraints surfaces as a failed Prove call, never as a proof of a
// negative statement, and backend failures (malformed keys, encoding) are
// reported verbatim.
package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/ilmoi/prove2pubkeys/circuit"
)

// SetupResult contains the compiled circuit and the keys from setup.
type SetupResult struct {
	ConstraintSystem constraint.ConstraintSystem
	ProvingKey       groth16.ProvingKey
	VerifyingKey     groth16.VerifyingKey
}

// Setup compiles the derivation circuit to R1CS and runs the Groth16
// setup. This is expensive: the circuit contains tens of SHA-512
// compressions and an emulated-field scalar multiplication.
func Setup() (*SetupResult, error) {
	var c circuit.Circuit
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &c)
	if err != nil {
		return nil, fmt.Errorf("compile circuit: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup: %w", err)
	}

	return &SetupResult{
		ConstraintSystem: cs,
		ProvingKey:       pk,
		VerifyingKey:     vk,
	}, nil
}

// Prove builds the full witness from the assignment and generates a
// proof. It returns the proof together with the public-input vector the
// verifier needs. If the assignment does not satisfy the constraints —
// wrong seed, path or public key — proving fails and no proof exists.
func (sr *SetupResult) Prove(assignment *circuit.Circuit) (groth16.Proof, witness.Witness, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("build witness: %w", err)
	}

	proof, err := groth16.Prove(sr.ConstraintSystem, sr.ProvingKey, w)
	if err != nil {
		return nil, nil, fmt.Errorf("generate proof: %w", err)
	}

	public, err := w.Public()
	if err != nil {
		return nil, nil, fmt.Errorf("extract public inputs: %w", err)
	}
	return proof, public, nil
}

// Verify checks a proof against the public-input vector.
func (sr *SetupResult) Verify(proof groth16.Proof, public witness.Witness) error {
	if err := groth16.Verify(proof, sr.VerifyingKey, public); err != nil {
		return fmt.Errorf("verify proof: %w", err)
	}
	return nil
}
