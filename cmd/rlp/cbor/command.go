// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
)

// Command returns the "cbor" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "cbor",
		Summary: "Transcode between RLP and CBOR",
		Description: `Convert item trees between RLP and CBOR.

RLP strings become CBOR byte strings and RLP lists become CBOR arrays,
written with Core Deterministic Encoding (RFC 8949 §4.2). Going the
other way, CBOR text strings and unsigned integers are also accepted
and map to their UTF-8 bytes and minimal big-endian bytes. Maps,
negative numbers, floats, and other CBOR types have no RLP form and
are rejected.

Every subcommand accepts an optional trailing file path; otherwise
input is read from stdin.`,
		Subcommands: []*cli.Command{
			toCommand(),
			fromCommand(),
			diagCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Convert an RLP file to CBOR",
				Command:     "rlp cbor to block.rlp > block.cbor",
			},
			{
				Description: "Convert CBOR back to RLP as hex",
				Command:     "rlp cbor from --hex-output block.cbor",
			},
			{
				Description: "Show the CBOR diagnostic notation of hex RLP",
				Command:     "echo c88363617483646f67 | rlp cbor diag -x",
			},
		},
	}
}
