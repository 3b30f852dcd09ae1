package importer

import (
	"fmt"
	"time"

	"github.com/rsat/josephjoseph-chile/internal/events"
	"github.com/rsat/josephjoseph-chile/internal/feed"
	"github.com/rsat/josephjoseph-chile/internal/journal"
	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/models"
	"github.com/rsat/josephjoseph-chile/internal/store"
	"github.com/rsat/josephjoseph-chile/internal/transform"
)

// Importer reconciles the upstream product feed against the remote catalog
// store. All operations are sequential: items are processed and reported
// in feed/listing order, and a per-item failure is logged and counted, not
// escalated. Only a feed pagination error aborts a run.
type Importer struct {
	feed        *feed.Client
	store       *store.Client
	transformer *transform.Transformer
	events      *events.Publisher // optional
	journal     *journal.Journal  // optional
	logger      *logger.Logger
	limit       int // 0 = no limit
}

func New(feedClient *feed.Client, storeClient *store.Client, logger *logger.Logger) *Importer {
	return &Importer{
		feed:        feedClient,
		store:       storeClient,
		transformer: transform.NewTransformer(),
		logger:      logger,
	}
}

// WithEvents enables sync-event publishing for every item outcome.
func (im *Importer) WithEvents(p *events.Publisher) *Importer {
	im.events = p
	return im
}

// WithJournal enables run history persistence.
func (im *Importer) WithJournal(j *journal.Journal) *Importer {
	im.journal = j
	return im
}

// WithLimit caps how many eligible products a run processes.
func (im *Importer) WithLimit(n int) *Importer {
	im.limit = n
	return im
}

// ImportAll drains the upstream feed and creates one catalog record per
// eligible product. Gallery and primary image travel as external URLs;
// use ImportWithMedia to re-host the primary image instead.
func (im *Importer) ImportAll() (*Report, error) {
	report := &Report{Mode: "import"}

	eligible, err := im.fetchEligible()
	if err != nil {
		return report, err
	}

	run := im.startRun(report.Mode)
	for i := range eligible {
		p := &eligible[i]
		im.logger.Info("[%d/%d] %s", i+1, len(eligible), p.Title)

		record := im.transformer.BuildRecord(p, i)
		documentID, err := im.store.CreateProduct(recordInput(record))
		if err != nil {
			im.logger.Error("Failed to create %q: %v", p.Title, err)
			im.record(report, run, record.Name, StatusFailed, err)
			continue
		}

		im.logger.Info("Created %s (%s), category %s, %d gallery images",
			record.Name, documentID, record.Category, len(record.Gallery))
		im.record(report, run, record.Name, StatusCreated, nil)
		im.publish(events.TypeCreated, documentID, record.Name)
	}
	im.finishRun(run, report)

	return report, nil
}

// fetchEligible drains the feed and applies the catalog eligibility filter
// after the full fetch, preserving feed order.
func (im *Importer) fetchEligible() ([]feed.Product, error) {
	products, err := im.feed.FetchAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	im.logger.Info("Fetched %d products from feed", len(products))

	eligible := feed.FilterKitchen(products)
	if im.limit > 0 && len(eligible) > im.limit {
		eligible = eligible[:im.limit]
	}
	im.logger.Info("Selected %d kitchen products", len(eligible))

	return eligible, nil
}

func recordInput(p *models.Product) *store.RecordInput {
	return &store.RecordInput{
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		Gradient:    p.Gradient,
		Features:    p.Features,
		IsNew:       p.IsNew,
		ImageURL:    p.Image,
		GalleryURLs: p.Gallery,
		PublishedAt: p.PublishedAt.Format(time.RFC3339),
	}
}

func (im *Importer) publish(eventType, documentID, name string) {
	if im.events == nil {
		return
	}
	if err := im.events.Publish(eventType, documentID, name); err != nil {
		im.logger.Error("Failed to publish %s event: %v", eventType, err)
	}
}

func (im *Importer) startRun(mode string) *journal.Run {
	if im.journal == nil {
		return nil
	}
	run, err := im.journal.StartRun(mode)
	if err != nil {
		im.logger.Error("Failed to open journal run: %v", err)
		return nil
	}
	return run
}

func (im *Importer) record(report *Report, run *journal.Run, name string, status Status, itemErr error) {
	report.add(name, status, itemErr)
	if im.journal == nil || run == nil {
		return
	}
	errMsg := ""
	if itemErr != nil {
		errMsg = itemErr.Error()
	}
	if err := im.journal.RecordItem(run.ID, name, string(status), errMsg); err != nil {
		im.logger.Error("Failed to journal item %q: %v", name, err)
	}
}

func (im *Importer) finishRun(run *journal.Run, report *Report) {
	if im.journal == nil || run == nil {
		return
	}
	if err := im.journal.FinishRun(run, report.Succeeded, report.Failed, report.Skipped); err != nil {
		im.logger.Error("Failed to close journal run: %v", err)
	}
}
