// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads a ".env" file from the working directory into the process
// environment before parseEnv runs. A missing file is not an error; anything
// else (unreadable file, malformed content) is reported.
//
// Variables already present in the environment keep their values: godotenv
// never overwrites, so a real exported RSPACE_API_KEY always beats the .env
// copy.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
