// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the rlp command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	cborcmd "github.com/exfinen/eth-rlp/cmd/rlp/cbor"
	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	codeccmd "github.com/exfinen/eth-rlp/cmd/rlp/codec"
	"github.com/exfinen/eth-rlp/lib/version"
)

// Root returns the complete command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "rlp",
		Description: `rlp: inspect, validate, and produce Recursive Length Prefix data.

RLP encodes trees whose leaves are byte strings. Every command reads one
item from a trailing file argument or stdin, accepts hex input with -x,
and transparently unwraps zstd or LZ4 framed input.

Configuration is read from the file named by --config or $RLP_CONFIG;
without either, built-in defaults apply.`,
		Subcommands: []*cli.Command{
			codeccmd.DecodeCommand(),
			codeccmd.EncodeCommand(),
			codeccmd.ValidateCommand(),
			codeccmd.TreeCommand(),
			codeccmd.HashCommand(),
			cborcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Fprintf(os.Stdout, "rlp %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Decode hex RLP to JSON",
				Command:     "echo c88363617483646f67 | rlp decode -x",
			},
			{
				Description: "Encode JSON to hex RLP",
				Command:     `echo '["cat","dog"]' | rlp encode -x`,
			},
			{
				Description: "Check that a file is canonical",
				Command:     "rlp validate block.rlp",
			},
			{
				Description: "Browse a file's structure with offsets",
				Command:     "rlp tree -o block.rlp",
			},
		},
	}
}
