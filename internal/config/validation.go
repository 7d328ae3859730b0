// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Error messages never include the api key value.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Client.validate(); err != nil {
		return err
	}
	if err := cfg.Summary.validate(); err != nil {
		return err
	}
	if cfg.Workers.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (c Client) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: RSpace URL is not set (RSPACE_URL or -url)", ErrInvalidClientConfigs)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: RSpace URL must be an absolute http(s) URL", ErrInvalidClientConfigs)
	}

	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: set RSPACE_API_KEY in the environment", ErrMissingAPIKey)
	}
	if strings.ContainsFunc(c.APIKey, unicode.IsSpace) {
		return fmt.Errorf("%w: api key contains whitespace", ErrInvalidClientConfigs)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}

func (s Summary) validate() error {
	if s.KeyColumn < 0 || s.ValueColumn < 0 {
		return fmt.Errorf("%w: column indexes must be non-negative", ErrInvalidSummaryConfigs)
	}
	if s.KeyColumn == s.ValueColumn {
		return fmt.Errorf("%w: key and value columns must differ", ErrInvalidSummaryConfigs)
	}
	if _, err := time.Parse("2006-01-02", s.DateFrom); err != nil {
		return fmt.Errorf("%w: date-from must look like 2006-01-02", ErrInvalidSummaryConfigs)
	}

	return nil
}
