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

type fromParams struct {
	cli.Globals
	HexInput  bool `flag:"hex,x"      desc:"treat input as hex-encoded CBOR"`
	HexOutput bool `flag:"hex-output" desc:"write hex text instead of binary"`
}

func fromCommand() *cli.Command {
	var params fromParams

	return &cli.Command{
		Name:    "from",
		Summary: "Convert CBOR to RLP",
		Description: `Read one CBOR data item and write the canonical RLP encoding of the
equivalent tree. Trailing bytes after the CBOR item are an error.`,
		Usage:  "rlp cbor from [-x] [--hex-output] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Convert hex CBOR to hex RLP",
				Command:     "echo 824363617443646f67 | rlp cbor from -x --hex-output",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			data, remaining, err := cli.ReadInput(args, os.Stdin, params.HexInput)
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return cli.Validation("from takes no positional arguments besides an optional file path, got %q", remaining[0])
			}
			logger.Debug("transcoding CBOR to RLP", "bytes", len(data))
			return cborToRLP(data, os.Stdout, params.HexOutput)
		},
	}
}

func cborToRLP(data []byte, w io.Writer, hexOutput bool) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected CBOR data")
	}
	item, err := rlpcbor.ToItem(data)
	if err != nil {
		return cli.Validation("%w", err)
	}
	encoded, err := rlp.Encode(item)
	if err != nil {
		return cli.Internal("encode RLP: %w", err)
	}
	if err := cli.WriteOutput(w, encoded, hexOutput); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
