// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the rlp tool.
//
// [Version], [GitCommit], and [BuildTime] are injected with -ldflags -X.
// When the commit was not injected, [Commit] falls back to the VCS
// revision the Go toolchain stamps into module builds, so a plain
// `go install` still reports where the binary came from.
package version
