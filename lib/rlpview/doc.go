// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rlpview renders RLP item trees for terminals.
//
// [Annotate] walks an encoded buffer and returns one [Node] per item in
// pre-order, each carrying its byte offset and header length, so a
// viewer can show exactly where every item sits in the input even when
// the input used non-minimal length prefixes. [Render] and
// [RenderNodes] print those nodes one per line, indented by depth:
//
//	000000  list  2 items, 8 bytes
//	000001    0x636174 "cat"  3 bytes
//	000005    0x646f67 "dog"  3 bytes
//
// Colour uses lipgloss with a fixed ANSI-256 profile, so output is the
// same whether or not the destination is a terminal; callers decide
// whether to enable it.
package rlpview
