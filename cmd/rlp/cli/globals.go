// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"

	"github.com/exfinen/eth-rlp/lib/config"
)

// Globals holds the flags every leaf command accepts. Embed it in a
// command's params struct:
//
//	type decodeParams struct {
//	    cli.Globals
//	    Compact bool `flag:"compact,c" desc:"print JSON on one line"`
//	}
type Globals struct {
	ConfigPath string `flag:"config"    desc:"YAML config file (default: $RLP_CONFIG, else built-in defaults)"`
	Verbose    bool   `flag:"verbose,v" desc:"log at debug level"`

	loaded *config.Config
}

// Config loads the configuration named by --config, or by RLP_CONFIG,
// once per invocation.
func (g *Globals) Config() (*config.Config, error) {
	if g.loaded != nil {
		return g.loaded, nil
	}
	var (
		cfg *config.Config
		err error
	)
	if g.ConfigPath != "" {
		cfg, err = config.LoadFile(g.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	g.loaded = cfg
	return cfg, nil
}

// LogLevel returns debug under --verbose, else the configured level.
func (g *Globals) LogLevel() (slog.Level, error) {
	if g.Verbose {
		return slog.LevelDebug, nil
	}
	cfg, err := g.Config()
	if err != nil {
		return 0, err
	}
	return config.ParseLogLevel(cfg.LogLevel)
}
