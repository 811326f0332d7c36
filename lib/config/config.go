// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/exfinen/eth-rlp/lib/compression"
	"github.com/exfinen/eth-rlp/lib/rlp"
	"github.com/exfinen/eth-rlp/lib/rlphash"
)

// EnvVar names the environment variable Load reads the config path
// from.
const EnvVar = "RLP_CONFIG"

// Config is the complete tool configuration.
type Config struct {
	Decode      DecodeConfig      `yaml:"decode"`
	Output      OutputConfig      `yaml:"output"`
	Compression CompressionConfig `yaml:"compression"`
	Hash        HashConfig        `yaml:"hash"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DecodeConfig controls how input buffers are decoded.
type DecodeConfig struct {
	// Strict rejects length prefixes that are not minimal.
	Strict bool `yaml:"strict"`

	// MaxDepth bounds list nesting. Zero means rlp.DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth"`

	// MaxInput bounds the size of an input after decompression, in
	// bytes.
	MaxInput int `yaml:"max_input"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Compact prints JSON on one line.
	Compact bool `yaml:"compact"`

	// Color is auto, always, or never. Auto enables colour when
	// stdout is a terminal.
	Color string `yaml:"color"`

	// Width truncates tree lines. Zero means no truncation.
	Width int `yaml:"width"`
}

// CompressionConfig selects the framing applied by `rlp encode`.
type CompressionConfig struct {
	// Algorithm is none, zstd, or lz4.
	Algorithm string `yaml:"algorithm"`

	// Level is algorithm specific; zero picks the library default.
	Level int `yaml:"level"`
}

// HashConfig selects the digest used by `rlp hash`.
type HashConfig struct {
	// Algorithm is keccak256, blake3, or sha256.
	Algorithm string `yaml:"algorithm"`
}

// Default returns the configuration used when no file is named.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			Strict:   false,
			MaxDepth: rlp.DefaultMaxDepth,
			MaxInput: 64 << 20,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Compression: CompressionConfig{
			Algorithm: "none",
		},
		Hash: HashConfig{
			Algorithm: "keccak256",
		},
		LogLevel: "info",
	}
}

// Load loads the file named by RLP_CONFIG, or returns Default when the
// variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s=%s: %w", EnvVar, path, err)
	}
	return cfg, nil
}

// LoadFile loads path over Default, expands variables, and validates
// the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses YAML over Default, expands variables, and validates the
// result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) expandVariables() {
	c.Output.Color = expandVars(c.Output.Color)
	c.Compression.Algorithm = expandVars(c.Compression.Algorithm)
	c.Hash.Algorithm = expandVars(c.Hash.Algorithm)
	c.LogLevel = expandVars(c.LogLevel)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Decode.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("decode.max_depth must not be negative, got %d", c.Decode.MaxDepth))
	}
	if c.Decode.MaxInput <= 0 {
		errs = append(errs, fmt.Errorf("decode.max_input must be positive, got %d", c.Decode.MaxInput))
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("output.color must be one of auto, always, never; got %q", c.Output.Color))
	}
	if c.Output.Width < 0 {
		errs = append(errs, fmt.Errorf("output.width must not be negative, got %d", c.Output.Width))
	}

	if _, err := compression.ParseAlgorithm(c.Compression.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("compression.algorithm: %w", err))
	}
	if c.Compression.Level < 0 {
		errs = append(errs, fmt.Errorf("compression.level must not be negative, got %d", c.Compression.Level))
	}

	if _, err := rlphash.ParseAlgorithm(c.Hash.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("hash.algorithm: %w", err))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	return errors.Join(errs...)
}

// DecodeOptions returns the decoder options the configuration selects.
func (c *Config) DecodeOptions() rlp.Options {
	return rlp.Options{Strict: c.Decode.Strict, MaxDepth: c.Decode.MaxDepth}
}

// CompressionAlgorithm returns the parsed compression algorithm. The
// configuration must have been validated.
func (c *Config) CompressionAlgorithm() compression.Algorithm {
	algorithm, _ := compression.ParseAlgorithm(c.Compression.Algorithm)
	return algorithm
}

// HashAlgorithm returns the parsed digest algorithm. The configuration
// must have been validated.
func (c *Config) HashAlgorithm() rlphash.Algorithm {
	algorithm, _ := rlphash.ParseAlgorithm(c.Hash.Algorithm)
	return algorithm
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", name)
	}
	return level, nil
}
