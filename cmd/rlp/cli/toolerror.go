// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory separates bad input from tool failure.
type ErrorCategory string

const (
	// CategoryValidation means the input or flags were wrong; the
	// caller should fix them and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal means an I/O failure or a bug.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by commands.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode maps validation errors to 2 and everything else to 1, so
// scripts can tell "rejected input" from "broken tool".
func (e *ToolError) ExitCode() int {
	if e.Category == CategoryValidation {
		return 2
	}
	return 1
}

// Validation creates a validation error. %w verbs wrap as usual.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
