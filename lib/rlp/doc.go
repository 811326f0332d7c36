// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rlp implements canonical Recursive Length Prefix encoding:
// a compact, self-delimiting byte format for trees whose leaves are
// byte strings and whose interior nodes are ordered lists.
//
// An [Item] is either a [String] or a [List]. The first byte of every
// encoded item (the header) selects one of five bands:
//
//	0x00-0x7f  single byte; the header is the whole one-byte string
//	0x80-0xb7  string of 0-55 bytes; length = header - 0x80
//	0xb8-0xbf  long string; header - 0xb7 bytes of big-endian length follow
//	0xc0-0xf7  list whose children total 0-55 bytes; length = header - 0xc0
//	0xf8-0xff  long list; header - 0xf7 bytes of big-endian length follow
//
// The encoding of a tree is unique. [Encode] always produces that
// canonical form, and [Decode] rejects the one non-canonical shape the
// format can otherwise express silently: a single byte below 0x80
// written with a header. Whether long-form length fields must also be
// minimal is selected by [Options.Strict]; with Strict set, every
// accepted input re-encodes to itself byte for byte.
//
// Decoding is all-or-nothing. The whole buffer must hold exactly one
// item, truncated or hostile input produces an [*Error] carrying the
// offset where decoding stopped, and nesting is bounded by
// [Options.MaxDepth] using an explicit stack rather than recursion.
//
// [MinimalBytes] and [ReadUint] convert between unsigned integers and
// the minimal big-endian form used for length fields; [Uint] applies
// the same form to integer payloads.
//
// This package has no dependencies outside the standard library and
// performs no I/O.
package rlp
