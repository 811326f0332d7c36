// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import (
	"math"
	"slices"
)

// Encode returns the canonical encoding of item using default options.
func Encode(item Item) ([]byte, error) {
	return Options{}.Encode(item)
}

// AppendEncode appends the canonical encoding of item to dst.
func AppendEncode(dst []byte, item Item) ([]byte, error) {
	return Options{}.AppendEncode(dst, item)
}

// EncodedSize returns the exact length of item's canonical encoding.
func EncodedSize(item Item) (uint64, error) {
	return Options{}.EncodedSize(item)
}

// Encode returns the canonical encoding of item.
func (o Options) Encode(item Item) ([]byte, error) {
	return o.AppendEncode(nil, item)
}

// AppendEncode appends the canonical encoding of item to dst. The
// output size is computed before anything is written, so dst grows at
// most once and is returned unmodified on error.
func (o Options) AppendEncode(dst []byte, item Item) ([]byte, error) {
	encoder := encoder{maxDepth: o.maxDepth()}
	size, err := encoder.size(item, 0)
	if err != nil {
		return dst, err
	}
	if size > uint64(math.MaxInt-len(dst)) {
		return dst, &Error{Kind: ErrLengthOverflow, Size: size}
	}
	dst = slices.Grow(dst, int(size))
	return encoder.write(dst, item), nil
}

// EncodedSize returns the exact length of item's canonical encoding.
func (o Options) EncodedSize(item Item) (uint64, error) {
	encoder := encoder{maxDepth: o.maxDepth()}
	return encoder.size(item, 0)
}

// encoder runs two passes over a tree: size records each list's
// content length in pre-order, and write consumes those lengths in the
// same order.
type encoder struct {
	maxDepth  int
	listSizes []uint64
	next      int
}

func (e *encoder) size(item Item, depth int) (uint64, error) {
	switch value := item.(type) {
	case String:
		length := uint64(len(value))
		if length == 1 && value[0] <= singleByteMax {
			return 1, nil
		}
		return headerSize(length) + length, nil

	case List:
		if depth >= e.maxDepth {
			return 0, &Error{Kind: ErrDepthExceeded, Size: uint64(e.maxDepth)}
		}
		slot := len(e.listSizes)
		e.listSizes = append(e.listSizes, 0)

		var content uint64
		for _, child := range value {
			childSize, err := e.size(child, depth+1)
			if err != nil {
				return 0, err
			}
			if childSize > math.MaxUint64-content {
				return 0, &Error{Kind: ErrLengthOverflow}
			}
			content += childSize
		}
		e.listSizes[slot] = content

		header := headerSize(content)
		if content > math.MaxUint64-header {
			return 0, &Error{Kind: ErrLengthOverflow}
		}
		return header + content, nil

	default:
		return 0, &Error{Kind: ErrInvalidItem}
	}
}

func (e *encoder) write(dst []byte, item Item) []byte {
	switch value := item.(type) {
	case String:
		if len(value) == 1 && value[0] <= singleByteMax {
			return append(dst, value[0])
		}
		dst = appendHeader(dst, shortString, uint64(len(value)))
		return append(dst, value...)

	case List:
		content := e.listSizes[e.next]
		e.next++
		dst = appendHeader(dst, shortList, content)
		for _, child := range value {
			dst = e.write(dst, child)
		}
	}
	return dst
}

// headerSize is the number of bytes a header for a payload of size
// bytes occupies: one byte for the short form, plus the length field
// for the long form.
func headerSize(size uint64) uint64 {
	if size <= maxShortLength {
		return 1
	}
	return 1 + uint64(MinimalLen(size))
}

// appendHeader appends the header for a payload of size bytes. base is
// shortString or shortList; the long form sits 55 above the short base.
func appendHeader(dst []byte, base byte, size uint64) []byte {
	if size <= maxShortLength {
		return append(dst, base+byte(size))
	}
	dst = append(dst, base+maxShortLength+byte(MinimalLen(size)))
	return AppendMinimal(dst, size)
}
