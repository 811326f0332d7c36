// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"math/rand/v2"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

// NewRand returns a deterministic source for seed. Tests log the seed
// so a failing tree can be regenerated.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomItem returns a random tree with lists nested at most maxDepth
// deep.
func RandomItem(rng *rand.Rand, maxDepth int) rlp.Item {
	if maxDepth <= 0 || rng.IntN(3) != 0 {
		return RandomString(rng)
	}
	children := make(rlp.List, rng.IntN(7))
	for i := range children {
		children[i] = RandomItem(rng, maxDepth-1)
	}
	return children
}

// RandomString returns a random string whose length is biased toward
// the boundaries between header forms.
func RandomString(rng *rand.Rand) rlp.String {
	var length int
	switch rng.IntN(8) {
	case 0:
		length = 0
	case 1, 2:
		length = 1
	case 3:
		length = 54 + rng.IntN(4)
	case 4:
		length = 256 + rng.IntN(64)
	case 5:
		length = 1024 + rng.IntN(2048)
	default:
		length = 2 + rng.IntN(40)
	}
	value := make(rlp.String, length)
	for i := range value {
		value[i] = byte(rng.UintN(256))
	}
	return value
}
