package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("RSPACE_URL", "https://rspace.example.edu")
	t.Setenv("RSPACE_API_KEY", "abcdef1234567890")
	t.Setenv("RSPACE_REQUEST_TIMEOUT", "20s")
	t.Setenv("SUMMARY_KEY_COLUMN", "3")
	t.Setenv("SUMMARY_SORT_FIELD", "Sample")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "90s")
	t.Setenv("CONFIG", "/tmp/rspace.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://rspace.example.edu", cfg.Client.BaseURL)
	assert.Equal(t, "abcdef1234567890", cfg.Client.APIKey)
	assert.Equal(t, 20*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, 3, cfg.Summary.KeyColumn)
	assert.Equal(t, "Sample", cfg.Summary.SortField)
	assert.Equal(t, 90*time.Second, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/rspace.json", cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Client.BaseURL)
	assert.Empty(t, cfg.Client.APIKey)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, loadDotEnv())
}
