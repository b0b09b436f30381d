package main

import (
	"fmt"
	"log"
	"os"

	"finance-planner/internal/app"
	"finance-planner/internal/config"
	"finance-planner/internal/kvstore"
	"finance-planner/internal/router"

	"github.com/rs/zerolog"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.Log.Level)

	// open the durable key-value store
	store, err := kvstore.OpenSQLite(cfg.Storage)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// assemble the core and run the one-shot initialization
	a := app.New(store, cfg.App.Currency)
	if err := a.Initialize(); err != nil {
		log.Fatalf("initialize storage: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, a, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
