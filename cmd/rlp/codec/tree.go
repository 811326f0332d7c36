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
	"github.com/exfinen/eth-rlp/lib/rlpview"
)

type treeParams struct {
	cli.Globals
	HexInput bool `flag:"hex,x"     desc:"treat input as hex-encoded RLP"`
	Offsets  bool `flag:"offsets,o" desc:"prefix each line with its byte offset"`
	Width    int  `flag:"width,w"   desc:"truncate lines to this many columns (default: output.width)"`
	NoColor  bool `flag:"no-color"  desc:"disable colour even on a terminal"`
	Strict   bool `flag:"strict,s"  desc:"reject non-minimal length prefixes"`
}

// TreeCommand returns the "tree" command.
func TreeCommand() *cli.Command {
	var params treeParams

	return &cli.Command{
		Name:    "tree",
		Summary: "Show the structure of RLP data",
		Description: `Print one line per item, indented by nesting depth. Lists show their
child count and payload size; strings show their hex bytes, a quoted
rendering when every byte is printable ASCII, and their length.

With --offsets each line starts with the hex offset of the item's first
header byte in the input, which makes it easy to line the tree up with
a hex dump. Colour follows output.color in the configuration ("auto"
colours only when stdout is a terminal).`,
		Usage:  "rlp tree [-x] [-o] [-w N] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Inspect a file with byte offsets",
				Command:     "rlp tree -o block.rlp",
			},
			{
				Description: "Inspect hex input, truncating long strings",
				Command:     "echo c88363617483646f67 | rlp tree -x -w 60",
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
				return cli.Validation("tree takes no positional arguments besides an optional file path, got %q", remaining[0])
			}

			options := cfg.DecodeOptions()
			options.Strict = options.Strict || params.Strict

			view := rlpview.Options{
				Offsets: params.Offsets,
				Width:   cfg.Output.Width,
				Color:   useColor(cfg.Output.Color, params.NoColor, os.Stdout),
			}
			if params.Width > 0 {
				view.Width = params.Width
			}
			logger.Debug("rendering tree", "bytes", len(data), "color", view.Color, "width", view.Width)

			return treeRLP(data, os.Stdout, options, view)
		},
	}
}

// treeRLP decodes data and renders its tree to w.
func treeRLP(data []byte, w io.Writer, options rlp.Options, view rlpview.Options) error {
	if len(data) == 0 {
		return cli.Validation("empty input: expected RLP data")
	}
	nodes, err := rlpview.Annotate(data, options)
	if err != nil {
		return cli.Validation("decode RLP: %w", err)
	}
	if err := rlpview.RenderNodes(w, nodes, view); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}

// useColor resolves output.color against --no-color and the output
// file.
func useColor(setting string, disabled bool, output *os.File) bool {
	if disabled {
		return false
	}
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return cli.IsTerminal(output)
	}
}
