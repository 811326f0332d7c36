// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cbor implements "rlp cbor", which moves item trees between
// RLP and deterministic CBOR and shows their CBOR diagnostic notation.
package cbor
