package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FirstSourceWins(t *testing.T) {
	envCfg := &StructuredConfig{
		Client: Client{BaseURL: "https://env.example.edu", APIKey: "envkey12345678"},
	}
	flagCfg := &StructuredConfig{
		Client:  Client{BaseURL: "https://flag.example.edu", RequestTimeout: 30 * time.Second},
		Summary: Summary{SortField: "Sample"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, envCfg, flagCfg)
	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	// env beats flags, flags beat defaults, defaults fill the rest
	assert.Equal(t, "https://env.example.edu", cfg.Client.BaseURL)
	assert.Equal(t, "envkey12345678", cfg.Client.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "Sample", cfg.Summary.SortField)
	assert.Equal(t, 2, cfg.Summary.KeyColumn)
	assert.Equal(t, 5, cfg.Summary.ValueColumn)
	assert.Equal(t, "2020-01-01", cfg.Summary.DateFrom)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestBuild_JSONBehindFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rspace.json")
	payload := `{
		"client": {"url": "https://json.example.edu", "api_key": "jsonkey12345678", "request_timeout": "1m"},
		"summary": {"sort_field": "Temperature"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	flagCfg := &StructuredConfig{
		Client:       Client{BaseURL: "https://flag.example.edu"},
		JSONFilePath: path,
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, flagCfg)
	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.edu", cfg.Client.BaseURL)
	assert.Equal(t, "jsonkey12345678", cfg.Client.APIKey)
	assert.Equal(t, time.Minute, cfg.Client.RequestTimeout)
	assert.Equal(t, "Temperature", cfg.Summary.SortField)
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing url",
			mutate:  func(cfg *StructuredConfig) { cfg.Client.BaseURL = "" },
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "relative url",
			mutate:  func(cfg *StructuredConfig) { cfg.Client.BaseURL = "rspace.example.edu" },
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *StructuredConfig) { cfg.Client.APIKey = "" },
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "whitespace in api key",
			mutate:  func(cfg *StructuredConfig) { cfg.Client.APIKey = "abc def" },
			wantErr: ErrInvalidClientConfigs,
		},
		{
			name:    "colliding columns",
			mutate:  func(cfg *StructuredConfig) { cfg.Summary.KeyColumn = 5 },
			wantErr: ErrInvalidSummaryConfigs,
		},
		{
			name:    "bad date floor",
			mutate:  func(cfg *StructuredConfig) { cfg.Summary.DateFrom = "01/02/2020" },
			wantErr: ErrInvalidSummaryConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := &StructuredConfig{
				Client: Client{BaseURL: "https://rspace.example.edu", APIKey: "abcdef1234567890"},
			}
			tt.mutate(base)

			b := newConfigBuilder()
			b.configs = append(b.configs, base)
			_, err := b.withDefaults().build()

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_ErrorTextNeverContainsKey(t *testing.T) {
	base := &StructuredConfig{
		Client: Client{BaseURL: "://bad", APIKey: "supersecretvalue"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, base)
	_, err := b.withDefaults().build()

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "supersecretvalue")
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(unset)", MaskKey(""))
	assert.Equal(t, "****", MaskKey("short"))
	assert.Equal(t, "****7890", MaskKey("abcdef1234567890"))
}
