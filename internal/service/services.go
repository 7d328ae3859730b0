// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

// Package service implements the summarize pipeline on top of the ELN
// adapter: parsing document CSV representations, building summary tables,
// publishing them back into RSpace, and the background refresh worker used
// by the interactive browser.
package service

import (
	"github.com/elntools/rspace-summary/internal/adapter"
	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
)

// ClientServices aggregates the application services so binaries can wire
// them in one call.
type ClientServices struct {
	FormService    FormService
	SummaryService SummaryService
	PublishService PublishService
}

func NewClientServices(eln adapter.ELNAdapter, cfg config.Summary, log *logger.Logger) *ClientServices {
	formSvc := NewFormService(log)
	summarySvc := NewSummaryService(eln, formSvc, cfg, log)

	return &ClientServices{
		FormService:    formSvc,
		SummaryService: summarySvc,
		PublishService: NewPublishService(eln, summarySvc, cfg, log),
	}
}
