package importer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rsat/josephjoseph-chile/internal/events"
	"github.com/rsat/josephjoseph-chile/internal/feed"
)

var mediaClient = &http.Client{Timeout: 30 * time.Second}

// ImportWithMedia mirrors ImportAll but re-hosts each primary image: the
// upstream file is staged on disk, uploaded to the store's media library
// and linked to the created record. The staging directory is removed on
// every exit path, including early errors.
func (im *Importer) ImportWithMedia() (*Report, error) {
	report := &Report{Mode: "media"}

	eligible, err := im.fetchEligible()
	if err != nil {
		return report, err
	}

	stagingDir, err := os.MkdirTemp("", "catalog-media-")
	if err != nil {
		return report, fmt.Errorf("failed to create staging dir: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	run := im.startRun(report.Mode)
	for i := range eligible {
		p := &eligible[i]
		im.logger.Info("[%d/%d] %s", i+1, len(eligible), p.Title)

		record := im.transformer.BuildRecord(p, i)
		input := recordInput(record)
		input.ImageURL = "" // the hosted copy replaces the external URL

		documentID, err := im.store.CreateProduct(input)
		if err != nil {
			im.logger.Error("Failed to create %q: %v", p.Title, err)
			im.record(report, run, record.Name, StatusFailed, err)
			continue
		}

		if err := im.attachImage(documentID, p, stagingDir); err != nil {
			im.logger.Error("Failed to attach image for %q: %v", p.Title, err)
			im.record(report, run, record.Name, StatusFailed, err)
			continue
		}

		im.logger.Info("Created %s (%s) with hosted image", record.Name, documentID)
		im.record(report, run, record.Name, StatusCreated, nil)
		im.publish(events.TypeCreated, documentID, record.Name)
	}
	im.finishRun(run, report)

	return report, nil
}

// attachImage downloads the product's primary image into the staging
// directory, uploads it and links the resulting media to the record. The
// staged file is deleted as soon as the upload finishes.
func (im *Importer) attachImage(documentID string, p *feed.Product, stagingDir string) error {
	if len(p.Images) == 0 {
		return nil
	}

	staged := filepath.Join(stagingDir, uuid.New().String()+".jpg")
	if err := downloadFile(p.Images[0].Src, staged); err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer os.Remove(staged)

	media, err := im.store.UploadFile(staged)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if len(media) == 0 {
		return fmt.Errorf("upload returned no media")
	}

	if err := im.store.LinkImage(documentID, media[0].ID); err != nil {
		return fmt.Errorf("link: %w", err)
	}
	return nil
}

func downloadFile(url, path string) error {
	resp, err := mediaClient.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image request failed: %d", resp.StatusCode)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return file.Close()
}
