// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import (
	"encoding/hex"
	"strings"
)

// Item is a node of an RLP tree: either a [String] or a [List]. The
// set of implementations is closed.
type Item interface {
	item()
}

// String is an opaque byte string.
type String []byte

// List is an ordered sequence of items.
type List []Item

func (String) item() {}
func (List) item()   {}

// Text returns the UTF-8 bytes of s as a String.
func Text(s string) String {
	return String(s)
}

// Uint returns n in its minimal big-endian form. Zero is the empty
// string, matching how integers are conventionally carried in RLP.
func Uint(n uint64) String {
	return String(MinimalBytes(n))
}

// Equal reports whether a and b are structurally identical trees. A nil
// String equals an empty String and a nil List equals an empty List,
// since both encode identically; a String never equals a List.
func Equal(a, b Item) bool {
	switch x := a.(type) {
	case String:
		y, ok := b.(String)
		return ok && string(x) == string(y)
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

// Format renders item on one line for logs and test failures. Strings
// print as 0x-prefixed hex (the empty string as ""), lists as
// bracketed, comma-separated children.
func Format(item Item) string {
	var builder strings.Builder
	format(&builder, item)
	return builder.String()
}

func format(builder *strings.Builder, item Item) {
	switch value := item.(type) {
	case String:
		if len(value) == 0 {
			builder.WriteString(`""`)
			return
		}
		builder.WriteString("0x")
		builder.WriteString(hex.EncodeToString(value))
	case List:
		builder.WriteByte('[')
		for i, child := range value {
			if i > 0 {
				builder.WriteString(", ")
			}
			format(builder, child)
		}
		builder.WriteByte(']')
	default:
		builder.WriteString("<nil>")
	}
}
