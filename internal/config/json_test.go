package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rspace.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"client": {"url": "https://rspace.example.edu", "api_key": "abcdef1234567890", "request_timeout": "30s"},
		"summary": {"key_column": 2, "value_column": 5, "sort_field": "Sample", "no_upload": true},
		"workers": {"refresh_interval": "5m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://rspace.example.edu", cfg.Client.BaseURL)
	assert.Equal(t, "abcdef1234567890", cfg.Client.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "Sample", cfg.Summary.SortField)
	assert.True(t, cfg.Summary.NoUpload)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeConfigFile(t, `{"client": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Client.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedDuration(t *testing.T) {
	path := writeConfigFile(t, `{"client": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}
