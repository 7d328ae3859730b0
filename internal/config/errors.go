package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidClientConfigs indicates invalid client settings (for
	// example, a missing or malformed RSpace URL, or a zero timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrMissingAPIKey indicates that no api key was found in any source.
	// The error text deliberately names the environment variable and never
	// the key value.
	ErrMissingAPIKey = errors.New("missing api key")
	// ErrInvalidSummaryConfigs indicates invalid summarize-pipeline settings
	// (for example, colliding column indexes or a malformed date floor).
	ErrInvalidSummaryConfigs = errors.New("invalid summary configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
