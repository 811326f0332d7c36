// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

// Header byte bands. Each band's base is the header value for a
// zero-length item of that form.
const (
	singleByteMax = 0x7f
	shortString   = 0x80
	longString    = 0xb7
	shortList     = 0xc0
	longList      = 0xf7

	// maxShortLength is the longest payload expressible inline in
	// the header byte.
	maxShortLength = 55
)

// Decode decodes exactly one item from b using default options. The
// whole buffer must be consumed; trailing bytes are an
// ErrRedundantData failure.
func Decode(b []byte) (Item, error) {
	return Options{}.Decode(b)
}

// Decode decodes exactly one item from b.
//
// b is copied once up front and the returned strings are slices of
// that copy, so the result never aliases the caller's buffer.
func (o Options) Decode(b []byte) (Item, error) {
	owned := make([]byte, len(b))
	copy(owned, b)

	cursor := NewCursor(owned)
	item, err := o.decodeItem(cursor)
	if err != nil {
		return nil, err
	}
	if !cursor.IsEmpty() {
		return nil, &Error{Kind: ErrRedundantData, Offset: cursor.Index()}
	}
	return item, nil
}

// listFrame is an open list: its window of the input and the children
// decoded from it so far.
type listFrame struct {
	cursor *Cursor
	items  List
}

// decodeItem decodes one item starting at the cursor. Nested lists are
// tracked on an explicit stack rather than the goroutine stack, so the
// depth limit is the only bound on nesting.
func (o Options) decodeItem(root *Cursor) (Item, error) {
	limit := o.maxDepth()
	var stack []listFrame

	for {
		var item Item
		depth := len(stack)

		if depth > 0 && stack[depth-1].cursor.IsEmpty() {
			item = stack[depth-1].items
			stack = stack[:depth-1]
		} else {
			cursor := root
			if depth > 0 {
				cursor = stack[depth-1].cursor
			}
			headerOffset := cursor.Index()
			decoded, window, err := o.decodeHeader(cursor)
			if err != nil {
				return nil, err
			}
			if window != nil {
				if depth >= limit {
					return nil, &Error{Kind: ErrDepthExceeded, Offset: headerOffset, Size: uint64(limit)}
				}
				stack = append(stack, listFrame{cursor: window, items: make(List, 0)})
				continue
			}
			item = decoded
		}

		if len(stack) == 0 {
			return item, nil
		}
		parent := &stack[len(stack)-1]
		parent.items = append(parent.items, item)
	}
}

// decodeHeader reads one header and either the string it introduces
// or, for a list, a cursor over the list's content.
func (o Options) decodeHeader(cursor *Cursor) (Item, *Cursor, error) {
	headerOffset := cursor.Index()
	header, err := cursor.Take(1)
	if err != nil {
		return nil, nil, &Error{Kind: ErrMissingHeader, Offset: headerOffset}
	}

	switch prefix := header[0]; {
	case prefix <= singleByteMax:
		return String(header), nil, nil

	case prefix <= longString:
		size := uint64(prefix - shortString)
		payload, err := cursor.Take(size)
		if err != nil {
			return nil, nil, &Error{Kind: ErrMissingPayload, Offset: cursor.Index(), Size: size}
		}
		if size == 1 && payload[0] <= singleByteMax {
			return nil, nil, &Error{Kind: ErrNonCanonicalSingleByte, Offset: headerOffset, Byte: payload[0]}
		}
		return String(payload), nil, nil

	case prefix < shortList:
		size, err := o.readLength(cursor, headerOffset, uint64(prefix-longString))
		if err != nil {
			return nil, nil, err
		}
		payload, err := cursor.Take(size)
		if err != nil {
			return nil, nil, &Error{Kind: ErrMissingPayload, Offset: cursor.Index(), Size: size}
		}
		return String(payload), nil, nil

	case prefix <= longList:
		size := uint64(prefix - shortList)
		window, err := cursor.Sub(size)
		if err != nil {
			return nil, nil, &Error{Kind: ErrMissingChildBlock, Offset: cursor.Index(), Size: size}
		}
		return nil, window, nil

	default:
		size, err := o.readLength(cursor, headerOffset, uint64(prefix-longList))
		if err != nil {
			return nil, nil, err
		}
		window, err := cursor.Sub(size)
		if err != nil {
			return nil, nil, &Error{Kind: ErrMissingChildBlock, Offset: cursor.Index(), Size: size}
		}
		return nil, window, nil
	}
}

// readLength reads the width-byte big-endian length field that follows
// a long-form header.
func (o Options) readLength(cursor *Cursor, headerOffset int, width uint64) (uint64, error) {
	field, err := cursor.Take(width)
	if err != nil {
		return 0, &Error{Kind: ErrMissingLengthOfLength, Offset: cursor.Index(), Size: width}
	}
	size, err := ReadUint(field)
	if err != nil {
		return 0, &Error{Kind: ErrLengthOfLengthTooLarge, Offset: headerOffset, Size: width}
	}
	if o.Strict && (field[0] == 0 || size <= maxShortLength) {
		return 0, &Error{Kind: ErrNonCanonicalLength, Offset: headerOffset, Size: size}
	}
	return size, nil
}
