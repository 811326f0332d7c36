// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/exfinen/eth-rlp/lib/config"
	"github.com/exfinen/eth-rlp/lib/testutil"
)

func TestGlobals_ConfigFromFlag(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	path := testutil.WriteFile(t, "rlp.yaml", []byte("decode:\n  strict: true\nlog_level: warn\n"))

	globals := Globals{ConfigPath: path}
	cfg, err := globals.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if !cfg.Decode.Strict {
		t.Error("expected strict decode from config file")
	}
	level, err := globals.LogLevel()
	if err != nil || level != slog.LevelWarn {
		t.Errorf("LogLevel = %v, %v; want warn", level, err)
	}

	globals.Verbose = true
	if level, _ := globals.LogLevel(); level != slog.LevelDebug {
		t.Errorf("LogLevel with --verbose = %v, want debug", level)
	}
}

func TestGlobals_DefaultsWithoutConfig(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	var globals Globals
	cfg, err := globals.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.Decode.Strict {
		t.Error("expected lenient decode by default")
	}
}

func TestGlobals_BadConfig(t *testing.T) {
	globals := Globals{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := globals.LogLevel(); err == nil {
		t.Error("expected error for missing config file")
	}
}
