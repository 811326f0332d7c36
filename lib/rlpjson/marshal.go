// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlpjson

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

// ToValue converts item into JSON-ready Go values: string for strings
// and []any for lists.
func ToValue(item rlp.Item) (any, error) {
	switch value := item.(type) {
	case rlp.String:
		return "0x" + hex.EncodeToString(value), nil
	case rlp.List:
		children := make([]any, len(value))
		for i, child := range value {
			converted, err := ToValue(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			children[i] = converted
		}
		return children, nil
	default:
		return nil, rlp.ErrInvalidItem
	}
}

// Marshal returns the compact JSON form of item.
func Marshal(item rlp.Item) ([]byte, error) {
	value, err := ToValue(item)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// MarshalIndent returns the JSON form of item indented with two spaces
// per level.
func MarshalIndent(item rlp.Item) ([]byte, error) {
	value, err := ToValue(item)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(value, "", "  ")
}
