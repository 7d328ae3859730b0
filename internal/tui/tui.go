// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

// Package tui implements the interactive notebook browser built on Bubble
// Tea. It shows the form documents of a notebook, keeps the list fresh with
// a background refresh job and can publish a summary back into RSpace.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/internal/service"
	"github.com/elntools/rspace-summary/models"
)

type TUI struct {
	services *service.ClientServices
	cfg      *config.StructuredConfig
	log      *logger.Logger
}

func New(services *service.ClientServices, cfg *config.StructuredConfig, log *logger.Logger) *TUI {
	return &TUI{services: services, cfg: cfg, log: log}
}

// Run blocks until the user quits the browser or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	// The program pointer is captured before the program exists; the job only
	// ticks after Start, which the model calls from inside the running
	// program, so the pointer is always set by the time notify fires.
	var p *tea.Program
	job := service.NewRefreshJob(t.services.SummaryService, func(records []models.FormRecord, err error) {
		p.Send(refreshDoneMsg{records: records, err: err})
	})
	defer job.Stop()

	model := newBrowseModel(ctx, t.services, job, t.cfg.Summary, t.cfg.Workers.RefreshInterval)
	p = tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		t.log.Error().Err(err).Msg("browser terminated")
		return err
	}
	return nil
}
