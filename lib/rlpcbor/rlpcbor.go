// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlpcbor

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("rlpcbor: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Trees may nest as deeply as the RLP decoder allows; the
		// library default of 32 levels is far below that.
		MaxNestedLevels: rlp.DefaultMaxDepth + 1,
		// Indefinite-length items have no canonical RLP counterpart
		// worth guessing at.
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic("rlpcbor: CBOR decoder initialization failed: " + err.Error())
	}
}

// FromItem returns the deterministic CBOR encoding of item.
func FromItem(item rlp.Item) ([]byte, error) {
	value, err := toCBORValue(item, 0)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(value)
}

// ToItem decodes one CBOR data item and converts it to an item tree.
func ToItem(data []byte) (rlp.Item, error) {
	var value any
	if err := decMode.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode CBOR: %w", err)
	}
	return fromCBORValue(value, "$")
}

// Diagnose returns the RFC 8949 diagnostic notation for the CBOR form
// of item.
func Diagnose(item rlp.Item) (string, error) {
	data, err := FromItem(item)
	if err != nil {
		return "", err
	}
	return cbor.Diagnose(data)
}

func toCBORValue(item rlp.Item, depth int) (any, error) {
	switch value := item.(type) {
	case rlp.String:
		if value == nil {
			return []byte{}, nil
		}
		return []byte(value), nil
	case rlp.List:
		if depth >= rlp.DefaultMaxDepth {
			return nil, &rlp.Error{Kind: rlp.ErrDepthExceeded, Size: rlp.DefaultMaxDepth}
		}
		elements := make([]any, len(value))
		for i, child := range value {
			converted, err := toCBORValue(child, depth+1)
			if err != nil {
				return nil, err
			}
			elements[i] = converted
		}
		return elements, nil
	default:
		return nil, rlp.ErrInvalidItem
	}
}

func fromCBORValue(value any, path string) (rlp.Item, error) {
	switch typed := value.(type) {
	case []byte:
		return rlp.String(typed), nil

	case string:
		return rlp.Text(typed), nil

	case uint64:
		return rlp.Uint(typed), nil

	case int64:
		// The decoder only produces int64 for negative integers.
		if typed < 0 {
			return nil, fmt.Errorf("%s: negative integer %d has no RLP form", path, typed)
		}
		return rlp.Uint(uint64(typed)), nil

	case big.Int:
		return fromBigInt(&typed, path)

	case *big.Int:
		return fromBigInt(typed, path)

	case []any:
		children := make(rlp.List, len(typed))
		for i, element := range typed {
			child, err := fromCBORValue(element, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return children, nil

	case nil:
		return nil, fmt.Errorf("%s: null has no RLP form", path)

	case cbor.Tag:
		return nil, fmt.Errorf("%s: CBOR tag %d has no RLP form", path, typed.Number)

	default:
		return nil, fmt.Errorf("%s: CBOR %T has no RLP form", path, value)
	}
}

func fromBigInt(n *big.Int, path string) (rlp.Item, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%s: negative bignum has no RLP form", path)
	}
	// big.Int.Bytes is already minimal: no leading zero, empty for 0.
	return rlp.String(n.Bytes()), nil
}
