package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bross/adapters/ledger"
	"bross/adapters/rng"
	"bross/adapters/stats"
	"bross/app"
	"bross/domain/plan"
	"bross/internal"
	"bross/internal/config"
	"bross/internal/robustness"
	"bross/internal/traversal"
	"bross/ports"
	"bross/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gin.SetMode(cfg.Server.GinMode)

	logger := internal.DefaultLogger
	engine := traversal.NewEngine(plan.Default())

	var ledgerPort ports.RunLedger
	if cfg.Database.Enabled {
		runLedger, err := ledger.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer runLedger.Close()
		ledgerPort = runLedger
	}

	driver := robustness.NewDriver(engine, rng.NewSeededRNG(), ports.NopProgress{}, cfg.Run.Workers)
	aggregator := robustness.NewAggregator(stats.NewClopperPearson())

	analysis := app.NewAnalysisService(engine, logger)
	evaluation := app.NewRobustnessService(driver, aggregator, ledgerPort, logger)

	server := ui.NewServer(analysis, evaluation, ledgerPort, logger)
	if err := server.Run(cfg.Server.Port); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
