// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the rlp tool.
//
// The central type is [Command], a named node with optional nested
// [Command.Subcommands], a params struct whose tagged fields become
// flags (see [BindFlags]), and a Run function. [Command.Execute] routes
// to a subcommand by the first positional argument, parses flags,
// builds a logger, and calls Run.
//
// Every leaf command's params embed [Globals], which contributes the
// --config and --verbose flags and resolves the effective
// configuration once per invocation.
//
// Unknown subcommands and flags get a "did you mean" suggestion based
// on Levenshtein distance (at most 3 edits).
//
// Errors returned from Run should be a [ToolError] (via [Validation] or
// [Internal]) so main can tell bad input from tool failure, or an
// [ExitError] when the command has already printed its answer and only
// the exit status remains.
package cli
