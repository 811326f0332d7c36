// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rlphash computes digests of canonical RLP encodings.
//
// Keccak-256 is the conventional hash of an RLP item and the default.
// BLAKE3 runs in keyed mode with a fixed domain key so that its
// digests can never collide with BLAKE3 hashes of the same bytes taken
// in another context. SHA-256 is offered for tooling that already
// speaks it.
//
// Digests are always taken over the canonical encoding. [OfItem]
// encodes the tree first; callers holding raw bytes from an untrusted
// source should decode them in strict mode before calling [Sum], since
// two non-canonical encodings of one tree hash differently.
package rlphash
