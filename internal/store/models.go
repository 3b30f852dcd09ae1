package store

import (
	"time"
)

// Record is the raw product shape the catalog store returns. Depending on
// how a record was imported, its image arrives either as an uploaded-media
// relation or as a plain external URL field, and likewise for the gallery.
// Resolving that ambiguity happens exactly once, in the read layer's
// projection, never here.
type Record struct {
	ID          int              `json:"id"`
	DocumentID  string           `json:"documentId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Gradient    string           `json:"gradient"`
	Features    []string         `json:"features"`
	IsNew       bool             `json:"isNew"`
	Image       *MediaRelation   `json:"image"`
	ImageURL    string           `json:"imageUrl"`
	Gallery     *GalleryRelation `json:"gallery"`
	GalleryURLs []string         `json:"galleryUrls"`
	PublishedAt *time.Time       `json:"publishedAt"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Media describes an entry in the store's upload library.
type Media struct {
	ID              int    `json:"id"`
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText"`
}

type mediaEntry struct {
	Attributes Media `json:"attributes"`
}

// MediaRelation is a single-file media field.
type MediaRelation struct {
	Data *mediaEntry `json:"data"`
}

// URL returns the uploaded file path, or "" when no media is linked.
func (r *MediaRelation) URL() string {
	if r == nil || r.Data == nil {
		return ""
	}
	return r.Data.Attributes.URL
}

// GalleryRelation is a multi-file media field.
type GalleryRelation struct {
	Data []mediaEntry `json:"data"`
}

// URLs returns the uploaded file paths in relation order.
func (r *GalleryRelation) URLs() []string {
	if r == nil || len(r.Data) == 0 {
		return nil
	}
	urls := make([]string, len(r.Data))
	for i, entry := range r.Data {
		urls[i] = entry.Attributes.URL
	}
	return urls
}

// RecordInput is the payload for create and full-replace operations.
// Timestamps travel as RFC 3339 strings.
type RecordInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Gradient    string   `json:"gradient"`
	Features    []string `json:"features"`
	IsNew       bool     `json:"isNew"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	GalleryURLs []string `json:"galleryUrls,omitempty"`
	PublishedAt string   `json:"publishedAt"`
}

type listResponse struct {
	Data []Record `json:"data"`
	Meta struct {
		Pagination struct {
			Page      int `json:"page"`
			PageSize  int `json:"pageSize"`
			PageCount int `json:"pageCount"`
			Total     int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

type recordResponse struct {
	Data Record `json:"data"`
}
