package main

import (
	"fmt"

	"github.com/elntools/rspace-summary/internal/adapter"
	"github.com/elntools/rspace-summary/internal/client"
	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/internal/service"
	"github.com/elntools/rspace-summary/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTUILogger("rspace-browse")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	eln, err := adapter.NewELNAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create eln adapter")
	}

	services := service.NewClientServices(eln, cfg.Summary, log)
	ui := tui.New(services, cfg, log)

	app, err := client.NewApp(cfg, eln, services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init browser app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("browser run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
