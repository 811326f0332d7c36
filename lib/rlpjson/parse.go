// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlpjson

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/exfinen/eth-rlp/lib/rlp"
)

// Parse converts a JSON or JSONC document into an item tree. See the
// package documentation for the accepted forms.
func Parse(data []byte) (rlp.Item, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing JSON: unexpected data after the top-level value")
	}

	return FromValue(value)
}

// FromValue converts a value produced by encoding/json (with UseNumber
// set, so that large integers keep their precision) into an item
// tree.
func FromValue(value any) (rlp.Item, error) {
	return fromValue(value, "$", 0)
}

func fromValue(value any, path string, depth int) (rlp.Item, error) {
	switch typed := value.(type) {
	case string:
		return parseString(typed, path)

	case json.Number:
		return parseNumber(typed, path)

	case float64:
		return parseNumber(json.Number(strconv.FormatFloat(typed, 'f', -1, 64)), path)

	case []any:
		if depth >= rlp.DefaultMaxDepth {
			return nil, fmt.Errorf("%s: nesting deeper than %d", path, rlp.DefaultMaxDepth)
		}
		children := make(rlp.List, len(typed))
		for i, element := range typed {
			child, err := fromValue(element, fmt.Sprintf("%s[%d]", path, i), depth+1)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return children, nil

	case nil:
		return nil, fmt.Errorf("%s: null has no RLP form", path)

	default:
		return nil, fmt.Errorf("%s: %s has no RLP form", path, jsonTypeName(value))
	}
}

// parseString decodes "0x…" as hex and takes anything else as UTF-8
// text.
func parseString(value, path string) (rlp.Item, error) {
	digits, isHex := strings.CutPrefix(value, "0x")
	if !isHex {
		return rlp.Text(value), nil
	}
	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid hex string %q: %w", path, value, err)
	}
	return rlp.String(decoded), nil
}

func parseNumber(number json.Number, path string) (rlp.Item, error) {
	n, err := strconv.ParseUint(number.String(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %s is not an unsigned 64-bit integer", path, number)
	}
	return rlp.Uint(n), nil
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
