// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/exfinen/eth-rlp/lib/compression"
)

// ReadInput returns the contents of the last argument when it names a
// regular file, otherwise all of stdin, along with the arguments that
// were not consumed. With hexMode the input is hex text; whitespace
// and an optional "0x" prefix are ignored.
func ReadInput(args []string, stdin io.Reader, hexMode bool) ([]byte, []string, error) {
	var data []byte
	remaining := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, Internal("read %s: %w", candidate, err)
			}
			remaining = args[:length-1]
		}
	}

	if data == nil {
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, nil, Internal("read stdin: %w", err)
		}
	}

	if hexMode {
		decoded, err := DecodeHex(data)
		if err != nil {
			return nil, nil, err
		}
		data = decoded
	}

	return data, remaining, nil
}

// ReadPayload is ReadInput followed by unwrapping a zstd or LZ4 frame,
// if the input has one. Output larger than limit bytes is rejected.
func ReadPayload(args []string, stdin io.Reader, hexMode bool, limit int, logger *slog.Logger) ([]byte, []string, error) {
	data, remaining, err := ReadInput(args, stdin, hexMode)
	if err != nil {
		return nil, nil, err
	}
	if limit > 0 && len(data) > limit {
		return nil, nil, Validation("input is %d bytes, limit is %d (decode.max_input)", len(data), limit)
	}

	payload, algorithm, err := compression.Decompress(data, limit)
	if err != nil {
		return nil, nil, Validation("%w", err)
	}
	if algorithm != compression.None {
		logger.Debug("decompressed input",
			"algorithm", algorithm.String(),
			"compressed_bytes", len(data),
			"bytes", len(payload),
		)
	}
	return payload, remaining, nil
}

// DecodeHex decodes hex text, ignoring whitespace and a leading "0x".
func DecodeHex(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
	cleaned = bytes.TrimPrefix(bytes.TrimPrefix(cleaned, []byte("0x")), []byte("0X"))

	if len(cleaned) == 0 {
		return nil, Validation("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, Validation("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// WriteOutput writes data as raw bytes, or as one line of lowercase
// hex when hexMode is set.
func WriteOutput(w io.Writer, data []byte, hexMode bool) error {
	if hexMode {
		_, err := fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	}
	_, err := w.Write(data)
	return err
}
