package transform

import (
	"strings"
	"time"

	"github.com/rsat/josephjoseph-chile/internal/feed"
	"github.com/rsat/josephjoseph-chile/internal/models"
)

// maxGalleryImages caps the gallery drawn from the non-primary upstream
// images.
const maxGalleryImages = 5

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// BuildRecord converts an upstream feed product into a catalog record.
// index is the product's position within the run and drives the gradient
// rotation.
func (t *Transformer) BuildRecord(p *feed.Product, index int) *models.Product {
	record := &models.Product{
		Name:        TranslateTitle(p.Title),
		Description: CleanDescription(p.BodyHTML),
		Category:    Classify(p.ProductType, p.Tags),
		Gradient:    Gradient(index),
		Features:    ExtractFeatures(p.BodyHTML, MaxFeatures),
		IsNew:       IsNew(p.Tags),
		Gallery:     GalleryURLs(p.Images),
		PublishedAt: time.Now(),
	}

	if len(p.Images) > 0 {
		record.Image = p.Images[0].Src
	}

	return record
}

// IsNew reports whether the upstream tags mark the product as a new
// arrival.
func IsNew(tags []string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), "new in") {
			return true
		}
	}
	return false
}

// GalleryURLs returns the non-primary image URLs in feed order, capped at
// five. The primary image is always excluded.
func GalleryURLs(images []feed.Image) []string {
	if len(images) <= 1 {
		return nil
	}

	rest := images[1:]
	if len(rest) > maxGalleryImages {
		rest = rest[:maxGalleryImages]
	}

	urls := make([]string, len(rest))
	for i, img := range rest {
		urls[i] = img.Src
	}
	return urls
}
