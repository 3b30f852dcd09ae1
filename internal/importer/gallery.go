package importer

import (
	"fmt"
	"strings"

	"github.com/rsat/josephjoseph-chile/internal/events"
	"github.com/rsat/josephjoseph-chile/internal/feed"
	"github.com/rsat/josephjoseph-chile/internal/transform"
)

// SyncGalleries backfills gallery URLs on existing store records by
// matching them against upstream products on the normalized title key,
// exact or substring either way. The first upstream match in feed order
// wins; there is no scoring and no uniqueness check, so records with
// overlapping titles can bind to the wrong product. A record with no match
// or fewer than two upstream images is skipped, not failed.
func (im *Importer) SyncGalleries() (*Report, error) {
	report := &Report{Mode: "gallery"}

	upstream, err := im.feed.FetchAll()
	if err != nil {
		return report, fmt.Errorf("failed to fetch feed: %w", err)
	}
	im.logger.Info("Fetched %d products from feed", len(upstream))

	records, err := im.store.ListAllProducts()
	if err != nil {
		return report, fmt.Errorf("failed to list store products: %w", err)
	}
	im.logger.Info("Got %d products from store", len(records))

	run := im.startRun(report.Mode)
	for i := range records {
		rec := &records[i]

		match := matchByTitle(rec.Name, upstream)
		if match == nil || len(match.Images) < 2 {
			im.record(report, run, rec.Name, StatusSkipped, nil)
			continue
		}

		urls := transform.GalleryURLs(match.Images)
		err := im.store.UpdateProduct(rec.DocumentID, map[string]interface{}{
			"galleryUrls": urls,
		})
		if err != nil {
			im.logger.Error("Failed to update %q: %v", rec.Name, err)
			im.record(report, run, rec.Name, StatusFailed, err)
			continue
		}

		im.logger.Info("[%d/%d] %s - added %d gallery images", i+1, len(records), rec.Name, len(urls))
		im.record(report, run, rec.Name, StatusUpdated, nil)
		im.publish(events.TypeUpdated, rec.DocumentID, rec.Name)
	}
	im.finishRun(run, report)

	return report, nil
}

// matchByTitle finds the first upstream product whose normalized title
// equals or contains (either way) the record's normalized title. Empty
// keys never match.
func matchByTitle(name string, products []feed.Product) *feed.Product {
	key := transform.NormalizeTitle(name)
	if key == "" {
		return nil
	}

	for i := range products {
		candidate := transform.NormalizeTitle(products[i].Title)
		if candidate == "" {
			continue
		}
		if candidate == key || strings.Contains(candidate, key) || strings.Contains(key, candidate) {
			return &products[i]
		}
	}
	return nil
}
