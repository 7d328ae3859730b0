package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and a
// string-friendly Duration type for file-based configuration.
type StructuredJSONConfig struct {
	Client struct {
		BaseURL        string   `json:"url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`

	Summary struct {
		KeyColumn   int    `json:"key_column"`
		ValueColumn int    `json:"value_column"`
		KeepHeader  bool   `json:"keep_header"`
		SortField   string `json:"sort_field"`
		OutputDir   string `json:"output_dir"`
		DateFrom    string `json:"date_from"`
		NoUpload    bool   `json:"no_upload"`
	} `json:"summary,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			BaseURL:        jsonCfg.Client.BaseURL,
			APIKey:         jsonCfg.Client.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
		},
		Summary: Summary{
			KeyColumn:   jsonCfg.Summary.KeyColumn,
			ValueColumn: jsonCfg.Summary.ValueColumn,
			KeepHeader:  jsonCfg.Summary.KeepHeader,
			SortField:   jsonCfg.Summary.SortField,
			OutputDir:   jsonCfg.Summary.OutputDir,
			DateFrom:    jsonCfg.Summary.DateFrom,
			NoUpload:    jsonCfg.Summary.NoUpload,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
