// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlpcbor"
)

type diagParams struct {
	cli.Globals
	HexInput bool `flag:"hex,x" desc:"treat input as hex-encoded RLP"`
}

func diagCommand() *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Show RLP as CBOR diagnostic notation",
		Description: `Decode one RLP item and print its CBOR form in RFC 8949 diagnostic
notation: byte strings as h'..' and lists as [..]. This is a compact
one-line view of a tree's shape.`,
		Usage:  "rlp cbor diag [-x] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "One-line view of a nested list",
				Command:     "echo c7c0c1c0c3c0c1c0 | rlp cbor diag -x",
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
				return cli.Validation("diag takes no positional arguments besides an optional file path, got %q", remaining[0])
			}
			return diagRLP(data, os.Stdout, cfg.DecodeOptions())
		},
	}
}

func diagRLP(data []byte, w io.Writer, options rlp.Options) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected RLP data")
	}
	item, err := options.Decode(data)
	if err != nil {
		return cli.Validation("decode RLP: %w", err)
	}
	notation, err := rlpcbor.Diagnose(item)
	if err != nil {
		return cli.Internal("diagnose: %w", err)
	}
	if _, err := fmt.Fprintln(w, notation); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
