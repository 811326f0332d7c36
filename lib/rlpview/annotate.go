// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlpview

import (
	"github.com/exfinen/eth-rlp/lib/rlp"
)

// Node is one item of a tree together with its position in the
// encoded buffer.
type Node struct {
	Item rlp.Item

	// Depth is 0 for the root.
	Depth int

	// Offset is the index of the item's first header byte.
	Offset int

	// HeaderLen is 0 for a single byte encoded as itself.
	HeaderLen int

	// PayloadLen is the string length, or the byte length of a list's
	// encoded children.
	PayloadLen uint64
}

// Annotate decodes data with opts and returns its nodes in pre-order.
// Decode errors are returned unchanged.
func Annotate(data []byte, opts rlp.Options) ([]Node, error) {
	root, err := opts.Decode(data)
	if err != nil {
		return nil, err
	}
	return layout(data, root), nil
}

// Layout returns the nodes of item as laid out in its canonical
// encoding.
func Layout(item rlp.Item) ([]Node, error) {
	encoded, err := rlp.Encode(item)
	if err != nil {
		return nil, err
	}
	return layout(encoded, item), nil
}

type layoutFrame struct {
	children rlp.List
	next     int
}

// layout pairs a decoded tree with the buffer it came from. Headers
// appear in the buffer in the same pre-order the tree is walked in, so
// a single forward scan recovers every offset. data must already be
// known to decode to root.
func layout(data []byte, root rlp.Item) []Node {
	var nodes []Node
	stack := []layoutFrame{{children: rlp.List{root}}}
	position := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		item := top.children[top.next]
		top.next++

		headerLen, payloadLen := readHeader(data[position:])
		nodes = append(nodes, Node{
			Item:       item,
			Depth:      len(stack) - 1,
			Offset:     position,
			HeaderLen:  headerLen,
			PayloadLen: payloadLen,
		})

		position += headerLen
		if list, isList := item.(rlp.List); isList {
			stack = append(stack, layoutFrame{children: list})
		} else {
			position += int(payloadLen)
		}
	}
	return nodes
}

// readHeader returns the header and payload lengths of the item at the
// start of buf, which must hold a valid header.
func readHeader(buf []byte) (int, uint64) {
	prefix := buf[0]
	switch {
	case prefix < 0x80:
		return 0, 1
	case prefix <= 0xb7:
		return 1, uint64(prefix - 0x80)
	case prefix < 0xc0:
		return longHeader(buf, int(prefix-0xb7))
	case prefix <= 0xf7:
		return 1, uint64(prefix - 0xc0)
	default:
		return longHeader(buf, int(prefix-0xf7))
	}
}

func longHeader(buf []byte, width int) (int, uint64) {
	// Width is 1..8 and the bytes were already read by the decoder.
	size, _ := rlp.ReadUint(buf[1 : 1+width])
	return 1 + width, size
}
