// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

// Cursor is a forward-only view over an immutable byte buffer. It
// never copies: [Cursor.Take] returns sub-slices of the buffer it was
// created over.
//
// A cursor created by [Cursor.Sub] shares its parent's buffer and is
// bounded to a window of it, so offsets reported by a child cursor are
// offsets into the original input, which is what diagnostics want.
type Cursor struct {
	buf    []byte
	offset int
	end    int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, end: len(buf)}
}

// Index returns the current offset into the underlying buffer.
func (c *Cursor) Index() int { return c.offset }

// Remaining returns the number of bytes between the offset and the
// end of the cursor's window.
func (c *Cursor) Remaining() int { return c.end - c.offset }

// IsEmpty reports whether the offset has reached the end of the
// window.
func (c *Cursor) IsEmpty() bool { return c.offset == c.end }

// Take returns the next n bytes and advances past them. When fewer
// than n bytes remain, Take returns a *ShortBufferError carrying the
// unchanged offset.
func (c *Cursor) Take(n uint64) ([]byte, error) {
	if n > uint64(c.Remaining()) {
		return nil, &ShortBufferError{Offset: c.offset, Want: n, Have: c.Remaining()}
	}
	start := c.offset
	c.offset += int(n)
	return c.buf[start:c.offset:c.offset], nil
}

// Sub takes the next n bytes and returns a cursor over exactly those
// bytes. The parent advances past them; the child starts at the
// parent's former offset.
func (c *Cursor) Sub(n uint64) (*Cursor, error) {
	start := c.offset
	if _, err := c.Take(n); err != nil {
		return nil, err
	}
	return &Cursor{buf: c.buf, offset: start, end: c.offset}, nil
}
