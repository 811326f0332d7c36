// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command rlp decodes, encodes, validates, and inspects RLP data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/cmd/rlp/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Root().Execute(ctx, os.Args[1:])
	stop()
	if err == nil {
		return
	}

	// Commands that already printed their answer (validate) return an
	// ExitError; don't add an "error:" line for those.
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	var toolErr *cli.ToolError
	if errors.As(err, &toolErr) {
		os.Exit(toolErr.ExitCode())
	}
	os.Exit(1)
}
