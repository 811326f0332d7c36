// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

// DefaultMaxDepth is the list nesting limit applied when
// Options.MaxDepth is zero. Real payloads rarely nest more than a
// handful of levels; the limit exists to bound work on hostile input.
const DefaultMaxDepth = 1024

// Options configures decoding and encoding. The zero value is the
// default configuration used by the package-level functions.
type Options struct {
	// Strict rejects long-form length fields that are not minimal:
	// a leading zero byte, or a length of 55 or less that should
	// have used the short form. With Strict set, every accepted
	// input re-encodes to exactly the same bytes.
	Strict bool

	// MaxDepth bounds list nesting. Zero or negative means
	// DefaultMaxDepth.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
