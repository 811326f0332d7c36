// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rlpjson converts between RLP item trees and JSON.
//
// The JSON form of a tree is fixed: every [rlp.String] becomes a
// "0x"-prefixed lowercase hex string ("0x" for the empty string) and
// every [rlp.List] becomes an array. [Marshal] always produces that
// form, so its output is stable and diffable.
//
// [Parse] is more forgiving, because its input is usually written by
// hand. It accepts JSONC (comments and trailing commas, via
// tidwall/jsonc) and, besides hex strings and arrays, plain text
// strings (taken as UTF-8 bytes) and non-negative integers (taken as
// minimal big-endian bytes, the way RLP conventionally carries
// integers):
//
//	[
//	  "cat",           // UTF-8 text
//	  "0x646f67",      // hex bytes
//	  1024,            // 0x0400
//	  [],
//	]
//
// Anything else (objects, booleans, null, negative or fractional
// numbers, malformed hex) is rejected with the JSON path of the
// offending value.
package rlpjson
