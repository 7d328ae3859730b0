package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/elntools/rspace-summary/internal/adapter"
	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/internal/service"
	"github.com/elntools/rspace-summary/internal/tui"
)

type App struct {
	cfg      *config.StructuredConfig
	eln      adapter.ELNAdapter
	services *service.ClientServices
	ui       *tui.TUI
	log      *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, eln adapter.ELNAdapter, services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || eln == nil || services == nil || ui == nil {
		return nil, errors.New("client: missing dependency")
	}
	return &App{cfg: cfg, eln: eln, services: services, ui: ui, log: log}, nil
}

// Run probes the API with the configured key, then hands control to the
// browser until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	status, err := a.eln.Status(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("RSpace rejected the API key (%s): regenerating a key invalidates the old one, check RSPACE_API_KEY: %w",
				config.MaskKey(a.cfg.Client.APIKey), err)
		}
		return fmt.Errorf("reach RSpace at %s: %w", a.cfg.Client.BaseURL, err)
	}
	a.log.Info().
		Str("rspace_version", status.RSpaceVersion).
		Str("url", a.cfg.Client.BaseURL).
		Msg("connected")

	return a.ui.Run(ctx)
}
