// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the codec and its
// tools.
//
// [RandomItem] draws pseudo-random item trees from a seeded source.
// The distribution deliberately concentrates on the band boundaries of
// the format (empty strings, single bytes on both sides of 0x80,
// 55/56-byte payloads, lists whose content crosses 55 bytes) so that
// property tests over a few thousand trees reach every header form.
//
// [RequireItemEqual] and [RequireErrorKind] compare decode results and
// error kinds with failure messages that print the trees involved.
//
// [WriteFile] writes a fixture into the test's temporary directory and
// returns its path; [UniqueID] produces distinguishable names.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
