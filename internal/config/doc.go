// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

// Package config loads the layered configuration of the rspace-summary
// binaries.
//
// Values are merged from, in priority order: environment variables (with an
// optional .env file loaded first), command-line flags, an optional JSON
// file, and built-in defaults. Merging is performed with mergo, so the first
// source that sets a field wins.
//
// The api key is a secret. It is read from RSPACE_API_KEY (or, discouraged,
// the -api-key flag or the JSON file), validated without being echoed, and
// only ever rendered through [MaskKey].
package config
