// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlpjson"
)

type decodeParams struct {
	cli.Globals
	HexInput bool `flag:"hex,x"     desc:"treat input as hex-encoded RLP"`
	Compact  bool `flag:"compact,c" desc:"print JSON on one line"`
	Strict   bool `flag:"strict,s"  desc:"reject non-minimal length prefixes"`
}

// DecodeCommand returns the "decode" command.
func DecodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert RLP to JSON",
		Description: `Decode one RLP item and print it as JSON.

Strings are printed as "0x"-prefixed lowercase hex and lists as JSON
arrays, so the output feeds straight back into "rlp encode".

The input must hold exactly one item. Trailing bytes, truncated
payloads, and single bytes below 0x80 written in long form are errors
that report the byte offset at which decoding failed.`,
		Usage:  "rlp decode [-x] [-c] [-s] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode a binary file",
				Command:     "rlp decode block.rlp",
			},
			{
				Description: "Decode hex from a pipeline",
				Command:     "echo c88363617483646f67 | rlp decode -x",
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
				return cli.Validation("decode takes no positional arguments besides an optional file path, got %q", remaining[0])
			}

			options := cfg.DecodeOptions()
			options.Strict = options.Strict || params.Strict
			logger.Debug("decoding", "bytes", len(data), "strict", options.Strict, "max_depth", options.MaxDepth)

			return decodeRLP(data, os.Stdout, options, params.Compact || cfg.Output.Compact)
		},
	}
}

// decodeRLP decodes data and writes its JSON form to w.
func decodeRLP(data []byte, w io.Writer, options rlp.Options, compact bool) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected RLP data")
	}

	item, err := options.Decode(data)
	if err != nil {
		return cli.Validation("decode RLP: %w", err)
	}

	var output []byte
	if compact {
		output, err = rlpjson.Marshal(item)
	} else {
		output, err = rlpjson.MarshalIndent(item)
	}
	if err != nil {
		return cli.Internal("format JSON: %w", err)
	}

	output = append(output, '\n')
	if _, err := w.Write(output); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
