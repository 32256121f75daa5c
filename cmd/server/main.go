package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/autonomous-futures/catalog/internal/airtable"
	"github.com/autonomous-futures/catalog/internal/catalog"
	"github.com/autonomous-futures/catalog/internal/config"
	"github.com/autonomous-futures/catalog/internal/logging"
	"github.com/autonomous-futures/catalog/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	store, err := airtable.NewClient(cfg.Airtable.BaseID, cfg.Airtable.Token)
	if err != nil {
		logger.Fatalw("initializing store client", "error", err)
	}

	cat := catalog.New(store, logger)
	srv := server.New(cat, logger)
	r := srv.SetupRouter(cfg.Server)

	logger.Infow("starting server", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
