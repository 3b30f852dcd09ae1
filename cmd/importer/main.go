package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rsat/josephjoseph-chile/internal/catalog"
	"github.com/rsat/josephjoseph-chile/internal/config"
	"github.com/rsat/josephjoseph-chile/internal/events"
	"github.com/rsat/josephjoseph-chile/internal/feed"
	"github.com/rsat/josephjoseph-chile/internal/importer"
	"github.com/rsat/josephjoseph-chile/internal/journal"
	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/store"
)

// One-off catalog scripts. Examples:
//
//	go run ./cmd/importer -mode=import
//	go run ./cmd/importer -mode=media -limit=15
//	go run ./cmd/importer -mode=gallery
//	go run ./cmd/importer -mode=seed
//	go run ./cmd/importer -mode=clean -yes
func main() {
	mode := flag.String("mode", "import", "import, media, gallery, seed or clean")
	limit := flag.Int("limit", 0, "cap the number of imported products (0 = all)")
	yes := flag.Bool("yes", false, "skip the confirmation prompt for -mode=clean")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Scripts write to the store, so the credential is not optional.
	if err := cfg.RequireStoreToken(); err != nil {
		logger.Fatal("%v", err)
	}

	feedClient := feed.NewClient(cfg.FeedURL, logger)
	storeClient := store.NewClient(cfg.StoreURL, cfg.StoreToken, logger)
	imp := importer.New(feedClient, storeClient, logger).WithLimit(*limit)

	if cfg.KafkaBrokers != "" {
		publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
		defer publisher.Close()
		imp = imp.WithEvents(publisher)
	}

	if cfg.DatabaseURL != "" {
		j, err := journal.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to open journal: %v", err)
		}
		defer j.Close()
		imp = imp.WithJournal(j)
	}

	var report *importer.Report
	switch *mode {
	case "import":
		report, err = imp.ImportAll()
	case "media":
		report, err = imp.ImportWithMedia()
	case "gallery":
		report, err = imp.SyncGalleries()
	case "seed":
		report, err = imp.SeedCurated(catalog.Fallback())
	case "clean":
		report, err = imp.DeleteAll(func(total int) bool {
			if *yes {
				return true
			}
			fmt.Printf("Delete all %d products from the store? [y/N] ", total)
			var answer string
			fmt.Scanln(&answer)
			return strings.EqualFold(answer, "y")
		})
	default:
		logger.Fatal("Unknown mode %q", *mode)
	}

	if report != nil {
		logger.Info("Finished: %s", report.Summary())
	}
	if err != nil {
		logger.Error("Run aborted: %v", err)
		os.Exit(1)
	}
}
