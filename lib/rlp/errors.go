// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import "fmt"

// ErrorKind classifies a codec failure. Every error returned by this
// package is either an ErrorKind or an *Error wrapping one, so callers
// can branch with errors.Is without parsing message text:
//
//	if errors.Is(err, rlp.ErrRedundantData) { ... }
type ErrorKind uint8

const (
	// ErrMissingHeader: no byte remained where an item header was
	// required.
	ErrMissingHeader ErrorKind = iota + 1

	// ErrMissingLengthOfLength: a long-form header declared more
	// length bytes than remain in the buffer.
	ErrMissingLengthOfLength

	// ErrLengthOfLengthTooLarge: a length field is wider than the
	// 8-byte integer the format supports.
	ErrLengthOfLengthTooLarge

	// ErrMissingPayload: a string declared more content bytes than
	// remain in the buffer.
	ErrMissingPayload

	// ErrMissingChildBlock: a list declared more content bytes than
	// remain in the buffer. Reported before any child is decoded.
	ErrMissingChildBlock

	// ErrNonCanonicalSingleByte: a one-byte string with a value of
	// 0x7f or less was written with a header instead of as a bare
	// byte.
	ErrNonCanonicalSingleByte

	// ErrRedundantData: bytes remain after the top-level item.
	ErrRedundantData

	// ErrNonCanonicalLength: a long-form length field has a leading
	// zero byte, or uses the long form for a length that fits the
	// short form. Only reported by strict decoding.
	ErrNonCanonicalLength

	// ErrDepthExceeded: list nesting is deeper than the configured
	// maximum.
	ErrDepthExceeded

	// ErrLengthOverflow: a length cannot be represented in 8 bytes
	// or addressed on this platform.
	ErrLengthOverflow

	// ErrInvalidItem: the encoder met a nil Item.
	ErrInvalidItem
)

var kindNames = map[ErrorKind]string{
	ErrMissingHeader:          "missing header",
	ErrMissingLengthOfLength:  "missing length-of-length bytes",
	ErrLengthOfLengthTooLarge: "length-of-length too large",
	ErrMissingPayload:         "missing payload",
	ErrMissingChildBlock:      "missing child block",
	ErrNonCanonicalSingleByte: "non-canonical single-byte string",
	ErrRedundantData:          "redundant trailing data",
	ErrNonCanonicalLength:     "non-canonical length",
	ErrDepthExceeded:          "nesting depth exceeded",
	ErrLengthOverflow:         "length overflow",
	ErrInvalidItem:            "invalid item",
}

func (k ErrorKind) Error() string {
	if name, ok := kindNames[k]; ok {
		return "rlp: " + name
	}
	return fmt.Sprintf("rlp: unknown error kind %d", uint8(k))
}

// Error is a codec failure at a specific position. Offset is the byte
// offset into the top-level input at which the problem was detected
// (for decode failures, the position the cursor held when the read was
// attempted). Size carries the length involved where one exists: the
// declared payload or child-block length, the length-of-length, or the
// nesting depth limit. Byte carries the offending value for
// ErrNonCanonicalSingleByte.
type Error struct {
	Kind   ErrorKind
	Offset int
	Size   uint64
	Byte   byte
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrMissingHeader:
		return fmt.Sprintf("rlp: no header byte at offset %d", e.Offset)
	case ErrMissingLengthOfLength:
		return fmt.Sprintf("rlp: no length field of %d bytes at offset %d", e.Size, e.Offset)
	case ErrLengthOfLengthTooLarge:
		return fmt.Sprintf("rlp: length field of %d bytes at offset %d exceeds 8 bytes", e.Size, e.Offset)
	case ErrMissingPayload:
		return fmt.Sprintf("rlp: no string payload of %d bytes at offset %d", e.Size, e.Offset)
	case ErrMissingChildBlock:
		return fmt.Sprintf("rlp: no child block of %d bytes at offset %d", e.Size, e.Offset)
	case ErrNonCanonicalSingleByte:
		return fmt.Sprintf("rlp: byte 0x%02x not encoded as a single byte at offset %d", e.Byte, e.Offset)
	case ErrRedundantData:
		return fmt.Sprintf("rlp: redundant data at offset %d", e.Offset)
	case ErrNonCanonicalLength:
		return fmt.Sprintf("rlp: non-canonical length %d at offset %d", e.Size, e.Offset)
	case ErrDepthExceeded:
		return fmt.Sprintf("rlp: nesting deeper than %d at offset %d", e.Size, e.Offset)
	case ErrLengthOverflow:
		return fmt.Sprintf("rlp: length overflow at offset %d", e.Offset)
	case ErrInvalidItem:
		return "rlp: cannot encode nil item"
	default:
		return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
	}
}

// Unwrap returns the error's kind so that errors.Is matches the kind
// sentinels.
func (e *Error) Unwrap() error { return e.Kind }

// ShortBufferError is returned by [Cursor.Take] and [Cursor.Sub] when
// fewer than Want bytes remain. Offset is the cursor position at the
// time of the request; the cursor has not moved.
type ShortBufferError struct {
	Offset int
	Want   uint64
	Have   int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("rlp: want %d bytes at offset %d, have %d", e.Want, e.Offset, e.Have)
}
