// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import "math/bits"

// MinimalLen returns the number of bytes in the shortest big-endian
// representation of n: 0 for n == 0, otherwise 1..8.
func MinimalLen(n uint64) int {
	return (bits.Len64(n) + 7) / 8
}

// MinimalBytes returns the shortest big-endian representation of n,
// with no leading zero byte. Zero maps to an empty slice.
func MinimalBytes(n uint64) []byte {
	return AppendMinimal(make([]byte, 0, MinimalLen(n)), n)
}

// AppendMinimal appends the minimal big-endian representation of n to
// dst and returns the extended slice.
func AppendMinimal(dst []byte, n uint64) []byte {
	for shift := (MinimalLen(n) - 1) * 8; shift >= 0; shift -= 8 {
		dst = append(dst, byte(n>>uint(shift)))
	}
	return dst
}

// ReadUint interprets b as a big-endian unsigned integer. It accepts
// leading zero bytes; whether those are acceptable is the caller's
// decision. An empty slice reads as zero.
func ReadUint(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, &Error{Kind: ErrLengthOfLengthTooLarge, Size: uint64(len(b))}
	}
	var n uint64
	for _, octet := range b {
		n = n<<8 | uint64(octet)
	}
	return n, nil
}
