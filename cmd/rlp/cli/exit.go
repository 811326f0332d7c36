// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError requests a non-zero exit without printing an error line.
// The command has already written its own output, as `rlp validate`
// does when it reports a non-canonical input.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the requested exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}
