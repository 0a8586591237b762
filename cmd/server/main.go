package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/david/tender-board/internal/api"
	"github.com/david/tender-board/internal/config"
	"github.com/david/tender-board/internal/ingest"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	srv := api.NewServer(cfg)

	// Warm the cache. A broken source is not fatal: the server starts
	// and reports SourceUnavailable per request until the file appears.
	if _, err := srv.Cache.Snapshot(); err != nil {
		if errors.Is(err, ingest.ErrSourceUnavailable) {
			log.Printf("Source not available yet: %v", err)
		} else {
			log.Fatalf("Initial load failed: %v", err)
		}
	}

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := srv.Start(cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
