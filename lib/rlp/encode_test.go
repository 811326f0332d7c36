// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input Item
		want  []byte
	}{
		{
			name:  "short string",
			input: Text("dog"),
			want:  []byte{0x83, 0x64, 0x6f, 0x67},
		},
		{
			name:  "list of strings",
			input: List{Text("cat"), Text("dog")},
			want:  []byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67},
		},
		{
			name:  "empty string",
			input: String{},
			want:  []byte{0x80},
		},
		{
			name:  "nil string",
			input: String(nil),
			want:  []byte{0x80},
		},
		{
			name:  "empty list",
			input: List{},
			want:  []byte{0xc0},
		},
		{
			name:  "set-theoretic three",
			input: List{List{}, List{List{}}, List{List{}, List{List{}}}},
			want:  []byte{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0},
		},
		{
			name:  "integer zero",
			input: Uint(0),
			want:  []byte{0x80},
		},
		{
			name:  "integer fifteen",
			input: Uint(15),
			want:  []byte{0x0f},
		},
		{
			name:  "integer 1024",
			input: Uint(1024),
			want:  []byte{0x82, 0x04, 0x00},
		},
		{
			name:  "single byte at 0x7f",
			input: String{0x7f},
			want:  []byte{0x7f},
		},
		{
			name:  "single byte at 0x80",
			input: String{0x80},
			want:  []byte{0x81, 0x80},
		},
		{
			name:  "long string",
			input: Text(lorem),
			want:  append([]byte{0xb8, 0x38}, lorem...),
		},
		{
			name:  "list crossing the short form",
			input: List{Text("cat"), Text(lorem)},
			want:  append([]byte{0xf8, 0x3e, 0x83, 'c', 'a', 't', 0xb8, 0x38}, lorem...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode(%s): %v", Format(tt.input), err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%s) = %x, want %x", Format(tt.input), got, tt.want)
			}

			size, err := EncodedSize(tt.input)
			if err != nil {
				t.Fatalf("EncodedSize: %v", err)
			}
			if size != uint64(len(tt.want)) {
				t.Errorf("EncodedSize = %d, want %d", size, len(tt.want))
			}
		})
	}
}

func TestEncodeStringBoundaries(t *testing.T) {
	tests := []struct {
		length     int
		wantHeader []byte
	}{
		{length: 2, wantHeader: []byte{0x82}},
		{length: 55, wantHeader: []byte{0xb7}},
		{length: 56, wantHeader: []byte{0xb8, 0x38}},
		{length: 255, wantHeader: []byte{0xb8, 0xff}},
		{length: 256, wantHeader: []byte{0xb9, 0x01, 0x00}},
		{length: 1 << 16, wantHeader: []byte{0xba, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		payload := bytes.Repeat([]byte{0xab}, tt.length)
		got, err := Encode(String(payload))
		if err != nil {
			t.Fatalf("Encode(%d bytes): %v", tt.length, err)
		}
		want := append(append([]byte{}, tt.wantHeader...), payload...)
		if !bytes.Equal(got, want) {
			t.Errorf("Encode(%d bytes) header = %x, want %x", tt.length, got[:len(tt.wantHeader)], tt.wantHeader)
		}
	}
}

func TestEncodeListBoundaries(t *testing.T) {
	// A 54-byte string encodes to 55 bytes: the largest short-form
	// list. One more byte of content moves the list to the long form.
	short := List{String(bytes.Repeat([]byte{'a'}, 54))}
	encoded, err := Encode(short)
	if err != nil {
		t.Fatal(err)
	}
	if encoded[0] != 0xf7 || len(encoded) != 56 {
		t.Errorf("55-byte list header = %x, length %d; want f7, 56", encoded[0], len(encoded))
	}

	long := List{String(bytes.Repeat([]byte{'a'}, 55))}
	encoded, err = Encode(long)
	if err != nil {
		t.Fatal(err)
	}
	if encoded[0] != 0xf8 || encoded[1] != 56 || len(encoded) != 58 {
		t.Errorf("56-byte list header = %x, length %d; want f8 38, 58", encoded[:2], len(encoded))
	}
}

func TestAppendEncodeKeepsPrefix(t *testing.T) {
	prefix := []byte{0xde, 0xad}
	got, err := AppendEncode(prefix, Text("dog"))
	if err != nil {
		t.Fatalf("AppendEncode: %v", err)
	}
	want := []byte{0xde, 0xad, 0x83, 'd', 'o', 'g'}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendEncode = %x, want %x", got, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	cyclic := List{nil}
	cyclic[0] = cyclic

	tests := []struct {
		name     string
		input    Item
		options  Options
		wantKind ErrorKind
	}{
		{name: "nil item", input: nil, wantKind: ErrInvalidItem},
		{name: "nil child", input: List{Text("a"), nil}, wantKind: ErrInvalidItem},
		{name: "depth limit", input: List{List{List{}}}, options: Options{MaxDepth: 2}, wantKind: ErrDepthExceeded},
		{name: "self-referencing list", input: cyclic, wantKind: ErrDepthExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.options.Encode(tt.input)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Encode error = %v, want %v", err, tt.wantKind)
			}
			if encoded != nil {
				t.Errorf("Encode returned %x alongside error", encoded)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Item
		want bool
	}{
		{name: "same strings", a: Text("dog"), b: String("dog"), want: true},
		{name: "different strings", a: Text("dog"), b: Text("cat"), want: false},
		{name: "nil and empty string", a: String(nil), b: String{}, want: true},
		{name: "nil and empty list", a: List(nil), b: List{}, want: true},
		{name: "string against list", a: String{}, b: List{}, want: false},
		{name: "nested", a: List{List{Text("a")}}, b: List{List{Text("a")}}, want: true},
		{name: "order matters", a: List{Text("a"), Text("b")}, b: List{Text("b"), Text("a")}, want: false},
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil against string", a: nil, b: String{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", Format(tt.a), Format(tt.b), got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format(List{Text("cat"), String{}, List{}, String{0x00, 0xff}})
	want := `[0x636174, "", [], 0x00ff]`
	if got != want {
		t.Errorf("Format = %s, want %s", got, want)
	}
}
