// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the rlp tool's YAML configuration.
//
// A configuration file is read only when one is named explicitly,
// either by the RLP_CONFIG environment variable (via [Load]) or by a
// --config flag (via [LoadFile]). Without either, [Default] applies.
// There is no search path and no per-field environment override; the
// only environment input is ${VAR} and ${VAR:-default} expansion inside
// string values.
//
// Unknown keys are rejected so that a misspelled option fails loudly
// instead of silently keeping its default.
package config
