// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/elntools/rspace-summary/internal/adapter"
	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/internal/service"
)

const usage = `Usage: rspace-summary [flags] NOTEBOOK_ID FORM_ID

Collects every document in NOTEBOOK_ID that was created from FORM_ID,
builds a summary table, writes it as CSV and publishes it back into the
notebook. IDs are RSpace global IDs, e.g. NB12345 and FM122.

The API key is read from the RSPACE_API_KEY environment variable (an .env
file in the working directory also works). Run with -h for the flag list.`

func main() {
	log := logger.NewLogger("rspace-summary")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	notebookID, formID := cfg.Args[0], cfg.Args[1]

	eln, err := adapter.NewELNAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create eln adapter")
	}
	services := service.NewClientServices(eln, cfg.Summary, log)

	ctx := context.Background()

	status, err := eln.Status(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			log.Fatal().
				Str("api_key", config.MaskKey(cfg.Client.APIKey)).
				Msg("RSpace rejected the API key: regenerating a key invalidates the old one, check RSPACE_API_KEY")
		}
		log.Fatal().Err(err).Str("url", cfg.Client.BaseURL).Msg("reach RSpace")
	}
	log.Info().Str("rspace_version", status.RSpaceVersion).Msg("connected")

	records, err := services.SummaryService.Collect(ctx, notebookID, formID)
	if err != nil {
		log.Fatal().Err(err).Msg("collect form documents")
	}
	if len(records) == 0 {
		log.Info().
			Str("notebook", notebookID).
			Str("form", formID).
			Msg("no documents created from the form, nothing to summarize")
		return
	}
	log.Info().Int("documents", len(records)).Msg("collected")

	table := services.SummaryService.Build(records, cfg.Summary.SortField)

	result, err := services.PublishService.Publish(ctx, notebookID, table, cfg.Summary.NoUpload)
	if err != nil {
		log.Fatal().Err(err).Msg("publish summary")
	}

	log.Info().Str("csv", result.CSVPath).Msg("summary csv written")
	if result.File != nil {
		log.Info().Str("file", result.File.GlobalID).Msg("summary csv uploaded")
	}
	if result.Document != nil {
		log.Info().Str("document", result.Document.GlobalID).Msg("summary document created")
	}
}
