// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec implements the rlp subcommands that read or produce
// RLP directly: decode, encode, validate, tree, and hash.
//
// Every command reads its input from a trailing file argument or from
// stdin. RLP inputs may be hex text (--hex) and may arrive wrapped in a
// zstd or LZ4 frame, which is removed before decoding. Decoding follows
// the decode section of the configuration: strict length checks,
// nesting limit, and input size limit.
package codec
