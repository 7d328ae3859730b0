package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-url RSpace instance URL (e.g. https://rspace.example.edu)
//	-api-key api key; prefer the RSPACE_API_KEY environment variable —
//	         keys given on the command line end up in shell history
//	-request-timeout outbound request timeout (e.g. "30s", "1m")
//	-c/-config json file path with configs
//	-sort form field name to sort the summary table by
//	-key-index CSV column used as field names
//	-value-index CSV column used as field values
//	-keep-header keep the header row of the document CSV representation
//	-output-dir directory the summary CSV is written to
//	-date-from lower bound of the created-date search term (2006-01-02)
//	-no-upload write the summary CSV locally but upload nothing
//	-refresh-interval browser document-list refresh period
//
// Remaining positional arguments are returned in [StructuredConfig.Args].
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var url string
	var apiKey string
	var requestTimeout time.Duration
	var jsonConfigPath string
	var sortField string
	var keyIndex, valueIndex int
	var keepHeader bool
	var outputDir string
	var dateFrom string
	var noUpload bool
	var refreshInterval time.Duration

	fs.StringVar(&url, "url", "", "RSpace instance URL")
	fs.StringVar(&apiKey, "api-key", "", "API key (prefer the RSPACE_API_KEY environment variable; command-line keys leak into shell history)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sortField, "sort", "", "Form field name to sort the summary by")
	fs.IntVar(&keyIndex, "key-index", 0, "CSV column used as field names")
	fs.IntVar(&valueIndex, "value-index", 0, "CSV column used as field values")
	fs.BoolVar(&keepHeader, "keep-header", false, "Keep the header row of the document CSV")
	fs.StringVar(&outputDir, "output-dir", "", "Directory for the summary CSV file")
	fs.StringVar(&dateFrom, "date-from", "", "Created-date search floor (2006-01-02)")
	fs.BoolVar(&noUpload, "no-upload", false, "Write the summary CSV but upload nothing")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Browser refresh period (e.g., 2m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Client: Client{
			BaseURL:        url,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		Summary: Summary{
			KeyColumn:   keyIndex,
			ValueColumn: valueIndex,
			KeepHeader:  keepHeader,
			SortField:   sortField,
			OutputDir:   outputDir,
			DateFrom:    dateFrom,
			NoUpload:    noUpload,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}
