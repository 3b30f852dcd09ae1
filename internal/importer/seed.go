package importer

import (
	"time"

	"github.com/rsat/josephjoseph-chile/internal/events"
	"github.com/rsat/josephjoseph-chile/internal/models"
)

// SeedCurated publishes a curated product set into the store, typically
// the bundled fallback catalog when bootstrapping a fresh environment
// before the first real feed import.
func (im *Importer) SeedCurated(products []models.Product) (*Report, error) {
	report := &Report{Mode: "seed"}

	run := im.startRun(report.Mode)
	for i := range products {
		p := &products[i]
		im.logger.Info("Migrating: %s", p.Name)

		if p.PublishedAt.IsZero() {
			p.PublishedAt = time.Now()
		}

		documentID, err := im.store.CreateProduct(recordInput(p))
		if err != nil {
			im.logger.Error("Failed to create %q: %v", p.Name, err)
			im.record(report, run, p.Name, StatusFailed, err)
			continue
		}

		im.logger.Info("Created %s (%s)", p.Name, documentID)
		im.record(report, run, p.Name, StatusCreated, nil)
		im.publish(events.TypeCreated, documentID, p.Name)
	}
	im.finishRun(run, report)

	return report, nil
}
