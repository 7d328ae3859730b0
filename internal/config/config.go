// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// rspace-summary binaries. It aggregates all sub-configurations and is
// populated by merging values from an optional .env file, environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Client holds the RSpace server address, the api key, and transport
	// timeouts.
	Client Client

	// Summary holds the defaults of the summarize pipeline: CSV column
	// mapping, sorting, output location, and the search date floor.
	Summary Summary `envPrefix:"SUMMARY_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged behind the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (notebook and form IDs for the one-shot binary).
	Args []string
}

// Client holds everything needed to reach the RSpace API.
type Client struct {
	// BaseURL is the root URL of the RSpace instance
	// (e.g. "https://rspace.example.edu"). The API path is appended by the
	// adapter.
	// Env: RSPACE_URL
	BaseURL string `env:"RSPACE_URL"`

	// APIKey is the RSpace api key. It is equivalent to the account
	// password: it must come from the environment (or a config file with
	// tight permissions), never from source code, and it is never written
	// to logs. Regenerating the key in the RSpace UI invalidates the old
	// one; the server then answers 401 until the new key is exported.
	// Env: RSPACE_API_KEY
	APIKey string `env:"RSPACE_API_KEY"`

	// RequestTimeout is the per-request timeout for outbound API calls.
	// Env: RSPACE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"RSPACE_REQUEST_TIMEOUT"`
}

// Summary holds the knobs of the summarize pipeline. The column defaults
// follow the document CSV representation served by RSpace, where column 2 is
// the field name and column 5 the field content.
type Summary struct {
	// KeyColumn is the CSV column used as field names.
	// Env: SUMMARY_KEY_COLUMN
	KeyColumn int `env:"KEY_COLUMN"`

	// ValueColumn is the CSV column used as field values.
	// Env: SUMMARY_VALUE_COLUMN
	ValueColumn int `env:"VALUE_COLUMN"`

	// KeepHeader disables skipping of the header row of the document CSV
	// representation.
	// Env: SUMMARY_KEEP_HEADER
	KeepHeader bool `env:"KEEP_HEADER"`

	// SortField is the form field name the summary table is sorted by.
	// Empty means no sorting.
	// Env: SUMMARY_SORT_FIELD
	SortField string `env:"SORT_FIELD"`

	// OutputDir is the directory the summary CSV file is written to.
	// Env: SUMMARY_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// DateFrom is the inclusive lower bound ("2006-01-02") of the
	// created-date search term.
	// Env: SUMMARY_DATE_FROM
	DateFrom string `env:"DATE_FROM"`

	// NoUpload makes Publish a dry run: the summary CSV is written locally
	// but nothing is uploaded and no summary document is created.
	// Env: SUMMARY_NO_UPLOAD
	NoUpload bool `env:"NO_UPLOAD"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// RefreshInterval defines how often the browser refreshes the document
	// list of the open notebook.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// MaskKey renders an api key safely for log output or UI hints. Only the
// last four characters survive; short keys are fully masked.
func MaskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) < 8 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// defaults returns the config merged in last, filling everything the other
// sources left unset.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Client: Client{
			RequestTimeout: 15 * time.Second,
		},
		Summary: Summary{
			KeyColumn:   2,
			ValueColumn: 5,
			OutputDir:   ".",
			DateFrom:    "2020-01-01",
		},
		Workers: Workers{
			RefreshInterval: 2 * time.Minute,
		},
	}
}
