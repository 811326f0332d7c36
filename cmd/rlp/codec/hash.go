// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlphash"
)

type hashParams struct {
	cli.Globals
	HexInput  bool   `flag:"hex,x"       desc:"treat input as hex-encoded RLP"`
	Algorithm string `flag:"algorithm,a" desc:"keccak256, blake3, or sha256 (default: hash.algorithm)"`
}

// HashCommand returns the "hash" command.
func HashCommand() *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Print the digest of an item's canonical encoding",
		Description: `Decode one RLP item, re-encode it canonically, and print the digest of
the canonical bytes as hex.

Hashing the canonical form means two inputs that differ only in
non-minimal length prefixes hash the same; use "rlp validate" first
when the exact input bytes matter. BLAKE3 digests are keyed with a
fixed domain key, so they differ from unkeyed BLAKE3 of the same bytes.`,
		Usage:  "rlp hash [-x] [-a algorithm] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Keccak-256 of the empty list",
				Command:     "echo c0 | rlp hash -x",
			},
			{
				Description: "BLAKE3 digest of a file",
				Command:     "rlp hash -a blake3 receipt.rlp",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.Config()
			if err != nil {
				return cli.Validation("%w", err)
			}
			data, remaining, err := cli.ReadPayload(args, os.Stdin, params.HexInput, cfg.Decode.MaxInput, logger)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("hash takes no positional arguments besides an optional file path, got %q", remaining[0])
			}

			algorithm := cfg.HashAlgorithm()
			if params.Algorithm != "" {
				if algorithm, err = rlphash.ParseAlgorithm(params.Algorithm); err != nil {
					return cli.Validation("--algorithm: %w", err)
				}
			}
			logger.Debug("hashing", "bytes", len(data), "algorithm", algorithm.String())

			return hashRLP(data, os.Stdout, cfg.DecodeOptions(), algorithm)
		},
	}
}

// hashRLP decodes data and writes the digest of its canonical
// encoding to w.
func hashRLP(data []byte, w io.Writer, options rlp.Options, algorithm rlphash.Algorithm) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected RLP data")
	}
	item, err := options.Decode(data)
	if err != nil {
		return cli.Validation("decode RLP: %w", err)
	}
	digest, err := rlphash.OfItem(algorithm, item)
	if err != nil {
		return cli.Internal("hash: %w", err)
	}
	if _, err := fmt.Fprintln(w, digest.String()); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
