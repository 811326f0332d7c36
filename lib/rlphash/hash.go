// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlphash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

// Algorithm identifies a digest function. The zero value is Keccak-256.
type Algorithm uint8

const (
	Keccak256 Algorithm = iota
	BLAKE3
	SHA256
)

// String returns the configuration name of an algorithm.
func (a Algorithm) String() string {
	switch a {
	case Keccak256:
		return "keccak256"
	case BLAKE3:
		return "blake3"
	case SHA256:
		return "sha256"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// ParseAlgorithm parses an algorithm from its configuration name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "keccak256", "keccak":
		return Keccak256, nil
	case "blake3":
		return BLAKE3, nil
	case "sha256":
		return SHA256, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm %q (expected keccak256, blake3, or sha256)", name)
	}
}

// Digest is a 32-byte digest. Every supported algorithm produces this
// size.
type Digest [32]byte

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses a 64-character hex string, with or without a
// "0x" prefix.
func ParseDigest(text string) (Digest, error) {
	var digest Digest
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text = text[2:]
	}
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}

// itemDomainKey is the BLAKE3 key for item digests: the ASCII bytes of
// "rlp.item" zero-padded to 32 bytes. Changing it changes every BLAKE3
// digest this package has ever produced.
var itemDomainKey = [32]byte{'r', 'l', 'p', '.', 'i', 't', 'e', 'm'}

// Sum returns the digest of an already encoded item.
func Sum(algorithm Algorithm, encoded []byte) Digest {
	hasher := newHasher(algorithm)
	hasher.Write(encoded)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// OfItem encodes item canonically and returns the digest of the
// encoding.
func OfItem(algorithm Algorithm, item rlp.Item) (Digest, error) {
	encoded, err := rlp.Encode(item)
	if err != nil {
		return Digest{}, err
	}
	return Sum(algorithm, encoded), nil
}

func newHasher(algorithm Algorithm) hash.Hash {
	switch algorithm {
	case BLAKE3:
		// NewKeyed only fails for keys that are not 32 bytes.
		hasher, err := blake3.NewKeyed(itemDomainKey[:])
		if err != nil {
			panic("rlphash: BLAKE3 keyed hash initialization failed: " + err.Error())
		}
		return hasher
	case SHA256:
		return sha256.New()
	case Keccak256:
		return sha3.NewLegacyKeccak256()
	default:
		panic(fmt.Sprintf("rlphash: unknown algorithm %d", uint8(algorithm)))
	}
}
