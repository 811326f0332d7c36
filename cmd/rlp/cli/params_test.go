// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_TypesAndDefaults(t *testing.T) {
	type params struct {
		Globals
		Algorithm string `flag:"algorithm,a" desc:"digest" default:"keccak256"`
		Compact   bool   `flag:"compact,c"   desc:"compact"`
		Width     int    `flag:"width"       desc:"width"  default:"80"`
		Limit     uint64 `flag:"limit"       desc:"limit"  default:"1024"`
		Ignored   string
	}
	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if p.Algorithm != "keccak256" || p.Width != 80 || p.Limit != 1024 || p.Compact {
		t.Errorf("defaults not applied: %+v", p)
	}

	err := flagSet.Parse([]string{"-a", "blake3", "-c", "--width=120", "--limit", "7", "--config", "x.yaml", "-v"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Algorithm != "blake3" || !p.Compact || p.Width != 120 || p.Limit != 7 {
		t.Errorf("parsed values wrong: %+v", p)
	}
	if p.ConfigPath != "x.yaml" || !p.Verbose {
		t.Errorf("embedded Globals not bound: %+v", p.Globals)
	}
	if flagSet.Lookup("Ignored") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Errors(t *testing.T) {
	type unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	type badDefault struct {
		Width int `flag:"width" default:"wide"`
	}

	tests := []struct {
		name   string
		params any
		want   string
	}{
		{name: "not a pointer", params: struct{}{}, want: "pointer to a struct"},
		{name: "unsupported type", params: &unsupported{}, want: "unsupported type"},
		{name: "bad default", params: &badDefault{}, want: "default for --width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindFlags(tt.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("BindFlags error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
