// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compression wraps encoded RLP payloads in zstd or LZ4
// frames and recognises those frames on input.
//
// Both formats are self-describing: a zstd frame starts with the magic
// number 0xFD2FB528 and an LZ4 frame with 0x184D2204, each stored
// little-endian. Neither prefix can begin a valid RLP buffer (a single
// byte below 0x80 is a complete item, so anything after it is
// redundant data), which makes [Detect] unambiguous for inputs that
// decode at all.
//
// [Decompress] enforces an output limit so a small hostile frame
// cannot expand into an arbitrarily large buffer.
package compression
