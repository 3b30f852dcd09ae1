package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rsat/josephjoseph-chile/internal/config"
	"github.com/rsat/josephjoseph-chile/internal/journal"
	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	if cfg.KafkaBrokers == "" {
		logger.Fatal("KAFKA_BROKERS not set")
	}

	var j *journal.Journal
	if cfg.DatabaseURL != "" {
		j, err = journal.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to open journal: %v", err)
		}
		defer j.Close()
	}

	// Initialize worker
	w := worker.New(cfg, logger, j)

	logger.Info("Starting worker...")
	go w.Start()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	w.Stop()
}
