// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rlpcbor transcodes RLP item trees to and from CBOR.
//
// RLP and CBOR agree on the two shapes RLP has: an [rlp.String] maps
// to a CBOR byte string (major type 2) and an [rlp.List] maps to a
// CBOR array (major type 4). [FromItem] emits only those two types,
// using Core Deterministic Encoding (RFC 8949 §4.2), so the CBOR form
// of a tree is as unique as its RLP form.
//
// [ToItem] additionally accepts the CBOR values that have an obvious
// RLP reading: text strings (as UTF-8 bytes) and non-negative integers
// including bignums (as minimal big-endian bytes). Maps, negative
// numbers, floats, booleans, null, and unrecognised tags are rejected,
// as is any data after the first CBOR item.
//
// [Diagnose] renders the CBOR form of a tree in RFC 8949 diagnostic
// notation, which is a convenient way to eyeball a tree's shape.
package rlpcbor
