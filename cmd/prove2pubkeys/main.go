// Copyright 2025 The prove2pubkeys Authors
// This file is part of the prove2pubkeys library.

// Command prove2pubkeys derives two Ed25519 public keys from one seed via
// two hardened SLIP-0010 paths, then proves in zero knowledge that both
// keys come from that seed, and verifies the proof.
package main

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcutil/base58"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"

	"github.com/ilmoi/prove2pubkeys/circuit"
	"github.com/ilmoi/prove2pubkeys/prover"
	"github.com/ilmoi/prove2pubkeys/slip10"
)

var (
	seedHex    string
	mnemonic   string
	passphrase string
	path1Flag  string
	path2Flag  string
)

var rootCmd = &cobra.Command{
	Use:          "prove2pubkeys",
	Short:        "prove two Ed25519 public keys derive from the same seed",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&seedHex, "seed", "", "64-byte master seed as hex")
	rootCmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic to derive the seed from (alternative to --seed)")
	rootCmd.Flags().StringVar(&passphrase, "passphrase", "", "optional BIP-39 passphrase")
	rootCmd.Flags().StringVar(&path1Flag, "path1", "44,501,0,0", "first hardened path: 4 comma-separated indices")
	rootCmd.Flags().StringVar(&path2Flag, "path2", "44,501,0,1", "second hardened path: 4 comma-separated indices")
}

func run(cmd *cobra.Command, args []string) error {
	seed, err := resolveSeed()
	if err != nil {
		return err
	}
	path1, err := parsePath(path1Flag)
	if err != nil {
		return err
	}
	path2, err := parsePath(path2Flag)
	if err != nil {
		return err
	}

	km1, err := slip10.DerivePath(seed, path1)
	if err != nil {
		return err
	}
	km2, err := slip10.DerivePath(seed, path2)
	if err != nil {
		return err
	}
	pubKey1 := km1.PublicKey()
	pubKey2 := km2.PublicKey()

	log.WithFields(log.Fields{
		"pubkey1": base58.Encode(pubKey1),
		"pubkey2": base58.Encode(pubKey2),
	}).Info("derived public keys")

	assignment, err := circuit.NewAssignment(seed, path1, path2, pubKey1, pubKey2)
	if err != nil {
		return err
	}

	start := time.Now()
	sr, err := prover.Setup()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"constraints": sr.ConstraintSystem.GetNbConstraints(),
		"took":        time.Since(start).String(),
	}).Info("circuit compiled and setup complete")

	start = time.Now()
	proof, public, err := sr.Prove(assignment)
	if err != nil {
		return err
	}
	log.WithField("took", time.Since(start).String()).Info("proof generated")

	if err := sr.Verify(proof, public); err != nil {
		return err
	}
	log.Info("proof verified")
	return nil
}

func resolveSeed() ([]byte, error) {
	if mnemonic != "" {
		// bip39.NewSeed always yields 64 bytes, the circuit's seed size.
		return bip39.NewSeed(mnemonic, passphrase), nil
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, err
	}
	if len(seed) != circuit.SeedSize {
		return nil, circuit.ErrSeedSize
	}
	return seed, nil
}

func parsePath(s string) ([]uint32, error) {
	parts := strings.Split(s, ",")
	path := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		path = append(path, uint32(v))
	}
	return path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
