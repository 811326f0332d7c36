// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/exfinen/eth-rlp/cmd/rlp/cli"
	"github.com/exfinen/eth-rlp/lib/compression"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlphash"
	"github.com/exfinen/eth-rlp/lib/rlpview"
)

// catDog is ["cat", "dog"].
var catDog = []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireCategory(t *testing.T, err error, category cli.ErrorCategory) {
	t.Helper()
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error = %v (%T), want *cli.ToolError", err, err)
	}
	if toolErr.Category != category {
		t.Fatalf("category = %q, want %q (error: %v)", toolErr.Category, category, err)
	}
}

func TestDecodeRLP(t *testing.T) {
	var output bytes.Buffer
	if err := decodeRLP(catDog, &output, rlp.Options{}, true); err != nil {
		t.Fatalf("decodeRLP: %v", err)
	}
	if want := `["0x636174","0x646f67"]` + "\n"; output.String() != want {
		t.Errorf("output = %q, want %q", output.String(), want)
	}

	output.Reset()
	if err := decodeRLP(catDog, &output, rlp.Options{}, false); err != nil {
		t.Fatalf("decodeRLP: %v", err)
	}
	if !strings.Contains(output.String(), "\n  \"0x636174\",\n") {
		t.Errorf("indented output = %q", output.String())
	}
}

func TestDecodeRLP_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		options rlp.Options
		kind    rlp.ErrorKind
	}{
		{name: "trailing data", input: []byte{0x80, 0x80}, kind: rlp.ErrRedundantData},
		{name: "truncated", input: []byte{0x83, 'd', 'o'}, kind: rlp.ErrMissingPayload},
		{name: "non-canonical single byte", input: []byte{0x81, 0x05}, kind: rlp.ErrNonCanonicalSingleByte},
		{name: "strict long form", input: []byte{0xb8, 0x03, 'd', 'o', 'g'}, options: rlp.Options{Strict: true}, kind: rlp.ErrNonCanonicalLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			err := decodeRLP(tt.input, &output, tt.options, true)
			requireCategory(t, err, cli.CategoryValidation)
			if !errors.Is(err, tt.kind) {
				t.Errorf("error = %v, want kind %v", err, tt.kind)
			}
			if output.Len() != 0 {
				t.Errorf("unexpected output on error: %q", output.String())
			}
		})
	}

	requireCategory(t, decodeRLP(nil, io.Discard, rlp.Options{}, true), cli.CategoryValidation)
}

func TestEncodeRLP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "cat dog", input: `["cat", "dog"]`, want: "c88363617483646f67\n"},
		{name: "integers", input: `[0, 15, 1024]`, want: "c5800f820400\n"},
		{name: "jsonc", input: "[\n  // nothing here\n  [],\n]", want: "c1c0\n"},
		{name: "hex string", input: `"0x00"`, want: "00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			if err := encodeRLP([]byte(tt.input), &output, compression.None, 0, true); err != nil {
				t.Fatalf("encodeRLP: %v", err)
			}
			if output.String() != tt.want {
				t.Errorf("output = %q, want %q", output.String(), tt.want)
			}
		})
	}
}

func TestEncodeRLP_CompressedRoundTrip(t *testing.T) {
	input := `[` + strings.Repeat(`"0x0102030405060708", `, 200) + `[]]`

	var framed bytes.Buffer
	if err := encodeRLP([]byte(input), &framed, compression.Zstd, 0, false); err != nil {
		t.Fatalf("encodeRLP: %v", err)
	}
	if compression.Detect(framed.Bytes()) != compression.Zstd {
		t.Fatalf("output is not a zstd frame: %x", framed.Bytes()[:8])
	}

	payload, _, err := compression.Decompress(framed.Bytes(), 0)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	var decoded bytes.Buffer
	if err := decodeRLP(payload, &decoded, rlp.Options{Strict: true}, true); err != nil {
		t.Fatalf("decodeRLP: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(decoded.String()), `"0x0102030405060708",[]]`) {
		t.Errorf("decoded = %.80s...", decoded.String())
	}
}

func TestEncodeRLP_Errors(t *testing.T) {
	for _, input := range []string{"", `{"a": 1}`, `[true]`, `[-1]`, `"0xzz"`} {
		err := encodeRLP([]byte(input), io.Discard, compression.None, 0, false)
		requireCategory(t, err, cli.CategoryValidation)
	}
}

func TestValidateRLP(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantValid bool
		wantText  string
	}{
		{name: "canonical list", input: catDog, wantValid: true, wantText: "valid"},
		{name: "canonical empty string", input: []byte{0x80}, wantValid: true, wantText: "valid"},
		{name: "long form for short string", input: []byte{0xb8, 0x03, 'd', 'o', 'g'}, wantText: "non-canonical length 3 at offset 0"},
		{name: "leading zero length", input: append([]byte{0xb9, 0x00, 0x38}, make([]byte, 56)...), wantText: "non-canonical length"},
		{name: "wrapped single byte", input: []byte{0x81, 0x7f}, wantText: "byte 0x7f not encoded as a single byte"},
		{name: "trailing data", input: []byte{0xc0, 0x00}, wantText: "redundant data at offset 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			err := validateRLP(tt.input, &output, rlp.Options{Strict: true}, discardLogger())
			if tt.wantValid {
				if err != nil {
					t.Fatalf("expected valid, got error: %v", err)
				}
			} else {
				var exitErr *cli.ExitError
				if !errors.As(err, &exitErr) || exitErr.Code != 1 {
					t.Fatalf("error = %v, want ExitError with code 1", err)
				}
			}
			if !strings.Contains(output.String(), tt.wantText) {
				t.Errorf("output = %q, want to contain %q", output.String(), tt.wantText)
			}
		})
	}
}

func TestDescribeMismatch(t *testing.T) {
	got := describeMismatch([]byte{0xc1, 0x80, 0x00}, []byte{0xc1, 0x80})
	want := "not canonical: first difference at byte 2 (input 3 bytes, canonical 2 bytes)"
	if got != want {
		t.Errorf("describeMismatch = %q, want %q", got, want)
	}
}

func TestTreeRLP(t *testing.T) {
	var output bytes.Buffer
	err := treeRLP(catDog, &output, rlp.Options{}, rlpview.Options{Offsets: true})
	if err != nil {
		t.Fatalf("treeRLP: %v", err)
	}
	want := "000000  list  2 items, 8 bytes\n" +
		"000001    0x636174 \"cat\"  3 bytes\n" +
		"000005    0x646f67 \"dog\"  3 bytes\n"
	if output.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", output.String(), want)
	}

	requireCategory(t, treeRLP([]byte{0xc2, 0x80}, io.Discard, rlp.Options{}, rlpview.Options{}), cli.CategoryValidation)
}

func TestHashRLP(t *testing.T) {
	var output bytes.Buffer
	if err := hashRLP([]byte{0xc0}, &output, rlp.Options{}, rlphash.Keccak256); err != nil {
		t.Fatalf("hashRLP: %v", err)
	}
	if want := "1dcc4de8dec75d7aab85b567b6ccd41ad312451b948a7413f0a142fd40d49347\n"; output.String() != want {
		t.Errorf("output = %q, want %q", output.String(), want)
	}

	// A non-minimal prefix hashes as its canonical form.
	canonical, padded := bytes.Buffer{}, bytes.Buffer{}
	if err := hashRLP([]byte{0x83, 'd', 'o', 'g'}, &canonical, rlp.Options{}, rlphash.SHA256); err != nil {
		t.Fatalf("hashRLP canonical: %v", err)
	}
	if err := hashRLP([]byte{0xb8, 0x03, 'd', 'o', 'g'}, &padded, rlp.Options{}, rlphash.SHA256); err != nil {
		t.Fatalf("hashRLP padded: %v", err)
	}
	if canonical.String() != padded.String() {
		t.Errorf("digests differ: %s vs %s", canonical.String(), padded.String())
	}
}

func TestUseColor(t *testing.T) {
	// Test binaries run without a terminal on stdout.
	tests := []struct {
		setting  string
		disabled bool
		want     bool
	}{
		{setting: "always", want: true},
		{setting: "always", disabled: true, want: false},
		{setting: "never", want: false},
		{setting: "auto", want: false},
	}
	for _, tt := range tests {
		if got := useColor(tt.setting, tt.disabled, os.Stdout); got != tt.want {
			t.Errorf("useColor(%q, %v) = %v, want %v", tt.setting, tt.disabled, got, tt.want)
		}
	}
}
