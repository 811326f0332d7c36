// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp_test

import (
	"bytes"
	"testing"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

func FuzzDecode(f *testing.F) {
	seeds := [][]byte{
		{0x83, 'd', 'o', 'g'},
		{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'},
		{0x80},
		{0xc0},
		{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0},
		{0x81, 0x05},
		{0xb8, 0x05, 'a', 'a', 'a', 'a', 'a'},
		{0xf8, 0x00},
		{0xbf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		item, err := rlp.Decode(data)
		if err != nil {
			return
		}

		encoded, err := rlp.Encode(item)
		if err != nil {
			t.Fatalf("Encode of decoded %x: %v", data, err)
		}
		again, err := rlp.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode of re-encoded %x: %v", encoded, err)
		}
		if !rlp.Equal(item, again) {
			t.Fatalf("round trip changed %s to %s", rlp.Format(item), rlp.Format(again))
		}

		if _, err := (rlp.Options{Strict: true}).Decode(data); err == nil && !bytes.Equal(encoded, data) {
			t.Fatalf("strict decode accepted %x but canonical form is %x", data, encoded)
		}
	})
}
