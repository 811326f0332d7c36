// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlpcbor"
)

type toParams struct {
	cli.Globals
	HexInput  bool `flag:"hex,x"      desc:"treat input as hex-encoded RLP"`
	HexOutput bool `flag:"hex-output" desc:"write hex text instead of binary"`
}

func toCommand() *cli.Command {
	var params toParams

	return &cli.Command{
		Name:    "to",
		Summary: "Convert RLP to CBOR",
		Description: `Decode one RLP item and write the deterministic CBOR encoding of the
same tree.`,
		Usage:  "rlp cbor to [-x] [--hex-output] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Convert and inspect",
				Command:     "rlp cbor to block.rlp | xxd",
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
				return cli.Validation("to takes no positional arguments besides an optional file path, got %q", remaining[0])
			}
			logger.Debug("transcoding RLP to CBOR", "bytes", len(data))
			return rlpToCBOR(data, os.Stdout, cfg.DecodeOptions(), params.HexOutput)
		},
	}
}

func rlpToCBOR(data []byte, w io.Writer, options rlp.Options, hexOutput bool) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected RLP data")
	}
	item, err := options.Decode(data)
	if err != nil {
		return cli.Validation("decode RLP: %w", err)
	}
	encoded, err := rlpcbor.FromItem(item)
	if err != nil {
		return cli.Internal("encode CBOR: %w", err)
	}
	if err := cli.WriteOutput(w, encoded, hexOutput); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
