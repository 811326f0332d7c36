// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/rlp"
)

type validateParams struct {
	cli.Globals
	HexInput bool `flag:"hex,x" desc:"treat input as hex-encoded RLP"`
}

// ValidateCommand returns the "validate" command.
func ValidateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that RLP is canonical",
		Description: `Check that the input is exactly one canonically encoded RLP item.
Prints "valid" and exits 0, or prints the first problem and exits 1.

The input is decoded in strict mode, which rejects length prefixes with
leading zeros or in long form when the short form would do, then
re-encoded and compared byte for byte with the input.`,
		Usage:  "rlp validate [-x] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Validate a file",
				Command:     "rlp validate tx.rlp",
			},
			{
				Description: "A non-minimal length prefix is rejected",
				Command:     "echo b803646f67 | rlp validate -x",
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
				return cli.Validation("validate takes no positional arguments besides an optional file path, got %q", remaining[0])
			}

			options := cfg.DecodeOptions()
			options.Strict = true
			return validateRLP(data, os.Stdout, options, logger)
		},
	}
}

// validateRLP writes "valid" when data is one canonical item, and
// otherwise writes a diagnosis and returns an ExitError.
func validateRLP(data []byte, w io.Writer, options rlp.Options, logger *slog.Logger) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected RLP data")
	}

	item, err := options.Decode(data)
	if err != nil {
		var decodeErr *rlp.Error
		if errors.As(err, &decodeErr) {
			logger.Debug("decode failed", "kind", decodeErr.Kind.Error(), "offset", decodeErr.Offset)
		}
		fmt.Fprintf(w, "invalid: %v\n", err)
		return &cli.ExitError{Code: 1}
	}

	reencoded, err := rlp.Encode(item)
	if err != nil {
		return cli.Internal("re-encode RLP: %w", err)
	}

	if !bytes.Equal(data, reencoded) {
		fmt.Fprintln(w, describeMismatch(data, reencoded))
		return &cli.ExitError{Code: 1}
	}

	fmt.Fprintln(w, "valid")
	return nil
}

func describeMismatch(original, reencoded []byte) string {
	offset := 0
	for offset < min(len(original), len(reencoded)) && original[offset] == reencoded[offset] {
		offset++
	}
	return fmt.Sprintf("not canonical: first difference at byte %d (input %d bytes, canonical %d bytes)",
		offset, len(original), len(reencoded))
}
