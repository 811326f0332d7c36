// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/compression"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlpjson"
)

type encodeParams struct {
	cli.Globals
	HexOutput bool   `flag:"hex,x"    desc:"write hex text instead of binary"`
	Compress  string `flag:"compress" desc:"wrap output in a frame: none, zstd, or lz4 (default: compression.algorithm)"`
	Level     int    `flag:"level"    desc:"compression level, 0 for the library default (default: compression.level)"`
}

// EncodeCommand returns the "encode" command.
func EncodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert JSON to RLP",
		Description: `Read a JSON item tree and write its canonical RLP encoding.

Arrays become lists. Strings starting with "0x" are hex bytes; any
other string is encoded as its UTF-8 bytes. Non-negative integers
become their minimal big-endian bytes, so 0 encodes as the empty
string. Comments and trailing commas are accepted.

The output is binary unless --hex is given. With --compress the
encoding is wrapped in a zstd or LZ4 frame, which every rlp command
recognises on input.`,
		Usage:  "rlp encode [-x] [--compress zstd|lz4] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Encode a list of two strings",
				Command:     `echo '["cat", "dog"]' | rlp encode -x`,
			},
			{
				Description: "Round trip through JSON",
				Command:     `echo '[1024, ["0x", []]]' | rlp encode | rlp decode`,
			},
			{
				Description: "Produce a zstd-framed file",
				Command:     "rlp encode --compress zstd tree.json > tree.rlp.zst",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.Config()
			if err != nil {
				return cli.Validation("%w", err)
			}
			data, remaining, err := cli.ReadInput(args, os.Stdin, false)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("encode takes no positional arguments besides an optional file path, got %q", remaining[0])
			}

			algorithm := cfg.CompressionAlgorithm()
			if params.Compress != "" {
				if algorithm, err = compression.ParseAlgorithm(params.Compress); err != nil {
					return cli.Validation("--compress: %w", err)
				}
			}
			level := cfg.Compression.Level
			if params.Level != 0 {
				level = params.Level
			}
			logger.Debug("encoding", "json_bytes", len(data), "compression", algorithm.String(), "level", level)

			return encodeRLP(data, os.Stdout, algorithm, level, params.HexOutput)
		},
	}
}

// encodeRLP parses a JSON item tree from data and writes its encoding
// to w.
func encodeRLP(data []byte, w io.Writer, algorithm compression.Algorithm, level int, hexOutput bool) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected a JSON item tree")
	}

	item, err := rlpjson.Parse(data)
	if err != nil {
		return cli.Validation("%w", err)
	}

	encoded, err := rlp.Encode(item)
	if err != nil {
		return cli.Internal("encode RLP: %w", err)
	}

	framed, err := compression.Compress(encoded, algorithm, level)
	if err != nil {
		return cli.Validation("compress: %w", err)
	}

	if err := cli.WriteOutput(w, framed, hexOutput); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
