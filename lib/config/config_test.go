// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exfinen/eth-rlp/lib/compression"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlphash"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate: %v", err)
	}
	if cfg.Decode.Strict {
		t.Error("expected strict=false by default")
	}
	if cfg.Decode.MaxDepth != rlp.DefaultMaxDepth {
		t.Errorf("expected max_depth=%d, got %d", rlp.DefaultMaxDepth, cfg.Decode.MaxDepth)
	}
	if cfg.HashAlgorithm() != rlphash.Keccak256 {
		t.Errorf("expected keccak256, got %v", cfg.HashAlgorithm())
	}
	if cfg.CompressionAlgorithm() != compression.None {
		t.Errorf("expected no compression, got %v", cfg.CompressionAlgorithm())
	}
}

func TestLoad_WithoutEnvReturnsDefault(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
}

func TestLoad_WithEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rlp.yaml")
	content := `
decode:
  strict: true
  max_depth: 64
output:
  compact: true
  color: never
  width: 100
compression:
  algorithm: zstd
  level: 19
hash:
  algorithm: blake3
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	options := cfg.DecodeOptions()
	if !options.Strict || options.MaxDepth != 64 {
		t.Errorf("DecodeOptions = %+v, want strict with depth 64", options)
	}
	if !cfg.Output.Compact || cfg.Output.Color != "never" || cfg.Output.Width != 100 {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.CompressionAlgorithm() != compression.Zstd || cfg.Compression.Level != 19 {
		t.Errorf("compression = %+v", cfg.Compression)
	}
	if cfg.HashAlgorithm() != rlphash.BLAKE3 {
		t.Errorf("hash = %v, want blake3", cfg.HashAlgorithm())
	}
	// Unset fields keep their defaults.
	if cfg.Decode.MaxInput != Default().Decode.MaxInput {
		t.Errorf("max_input = %d, want default", cfg.Decode.MaxInput)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(empty): %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log_level=info, got %s", cfg.LogLevel)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("decode:\n  strickt: true\n"))
	if err == nil || !strings.Contains(err.Error(), "strickt") {
		t.Errorf("expected error naming the unknown key, got %v", err)
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	content := `
decode:
  max_depth: -1
output:
  color: sometimes
hash:
  algorithm: md5
log_level: loud
`
	_, err := Parse([]byte(content))
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"decode.max_depth", "output.color", "hash.algorithm", "log_level"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("RLP_TEST_HASH", "sha256")
	t.Setenv("RLP_TEST_UNSET", "")

	tests := []struct {
		input string
		want  string
	}{
		{input: "${RLP_TEST_HASH}", want: "sha256"},
		{input: "${RLP_TEST_UNSET:-blake3}", want: "blake3"},
		{input: "${RLP_TEST_UNSET}", want: ""},
		{input: "plain", want: "plain"},
	}
	for _, tt := range tests {
		if got := expandVars(tt.input); got != tt.want {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	cfg, err := Parse([]byte("hash:\n  algorithm: ${RLP_TEST_HASH}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HashAlgorithm() != rlphash.SHA256 {
		t.Errorf("expanded hash algorithm = %v, want sha256", cfg.HashAlgorithm())
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("warn")
	if err != nil || level != slog.LevelWarn {
		t.Errorf("ParseLogLevel(warn) = %v, %v", level, err)
	}
	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("ParseLogLevel(verbose) succeeded, want error")
	}
}
