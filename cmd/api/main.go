package main

import (
	"log"

	"github.com/rsat/josephjoseph-chile/internal/api"
	"github.com/rsat/josephjoseph-chile/internal/catalog"
	"github.com/rsat/josephjoseph-chile/internal/config"
	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// The read path works without a token (public reads), so no
	// RequireStoreToken here.
	storeClient := store.NewClient(cfg.StoreURL, cfg.StoreToken, logger)
	service := catalog.NewService(storeClient, logger)

	// Initialize API server
	server := api.New(cfg, logger, service)

	logger.Info("Starting catalog API on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
