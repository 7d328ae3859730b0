// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

// Package client implements the interactive browser application runtime.
//
// It wires the ELN adapter, the summarize services and the terminal UI into
// a single process lifecycle.
package client
