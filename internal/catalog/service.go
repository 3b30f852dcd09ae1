package catalog

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/models"
	"github.com/rsat/josephjoseph-chile/internal/store"
)

const readPageSize = "100"

// Service is the catalog read layer. Every accessor resolves against the
// remote store and independently falls back to the bundled static catalog
// on any failure; none of them ever surfaces an error to the rendering
// layer. Degraded reads are logged, not raised.
type Service struct {
	store  *store.Client
	logger *logger.Logger
}

func NewService(storeClient *store.Client, logger *logger.Logger) *Service {
	return &Service{
		store:  storeClient,
		logger: logger,
	}
}

// GetProducts returns the full catalog.
func (s *Service) GetProducts() []models.Product {
	q := url.Values{}
	q.Set("populate", "*")
	q.Set("pagination[pageSize]", readPageSize)

	records, err := s.store.QueryProducts(q.Encode())
	if err != nil {
		s.logger.Warn("Failed to fetch products from store, using fallback data: %v", err)
		return Fallback()
	}

	return s.transformAll(records)
}

// GetProductByID returns a single product, or nil when it does not exist
// in whichever source answered.
func (s *Service) GetProductByID(id string) *models.Product {
	q := url.Values{}
	q.Set("filters[documentId][$eq]", id)
	q.Set("populate", "*")

	records, err := s.store.QueryProducts(q.Encode())
	if err != nil {
		s.logger.Warn("Failed to fetch product %s from store, using fallback: %v", id, err)
		for _, p := range Fallback() {
			if p.ID == id {
				return &p
			}
		}
		return nil
	}

	if len(records) == 0 {
		return nil
	}
	product := s.transformRecord(&records[0])
	return &product
}

// GetProductsByCategory returns the products of one taxonomy category.
func (s *Service) GetProductsByCategory(category models.Category) []models.Product {
	q := url.Values{}
	q.Set("filters[category][$eq]", string(category))
	q.Set("populate", "*")
	q.Set("pagination[pageSize]", readPageSize)

	records, err := s.store.QueryProducts(q.Encode())
	if err != nil {
		s.logger.Warn("Failed to fetch %s products from store, using fallback: %v", category, err)
		var out []models.Product
		for _, p := range Fallback() {
			if p.Category == category {
				out = append(out, p)
			}
		}
		return out
	}

	return s.transformAll(records)
}

// GetNewProducts returns the products flagged as new arrivals.
func (s *Service) GetNewProducts() []models.Product {
	q := url.Values{}
	q.Set("filters[isNew][$eq]", "true")
	q.Set("populate", "*")
	q.Set("pagination[pageSize]", readPageSize)

	records, err := s.store.QueryProducts(q.Encode())
	if err != nil {
		s.logger.Warn("Failed to fetch new products from store, using fallback: %v", err)
		var out []models.Product
		for _, p := range Fallback() {
			if p.IsNew {
				out = append(out, p)
			}
		}
		return out
	}

	return s.transformAll(records)
}

// GetCategories derives the distinct sorted category list from whichever
// product source succeeded.
func (s *Service) GetCategories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range s.GetProducts() {
		if _, ok := seen[string(p.Category)]; ok {
			continue
		}
		seen[string(p.Category)] = struct{}{}
		categories = append(categories, string(p.Category))
	}
	sort.Strings(categories)
	return categories
}

func (s *Service) transformAll(records []store.Record) []models.Product {
	products := make([]models.Product, len(records))
	for i := range records {
		products[i] = s.transformRecord(&records[i])
	}
	return products
}

// transformRecord is the one place where the store's raw shape becomes a
// catalog record: uploaded media wins over the plain URL fields for both
// the primary image and the gallery, and uploaded paths are absolutized
// against the store origin. No other code may interpret those fields.
func (s *Service) transformRecord(r *store.Record) models.Product {
	id := r.DocumentID
	if id == "" {
		id = strconv.Itoa(r.ID)
	}

	image := ""
	if u := r.Image.URL(); u != "" {
		image = s.store.BaseURL() + u
	} else if r.ImageURL != "" {
		image = r.ImageURL
	}

	var gallery []string
	if uploaded := r.Gallery.URLs(); len(uploaded) > 0 {
		gallery = make([]string, len(uploaded))
		for i, u := range uploaded {
			gallery[i] = s.store.BaseURL() + u
		}
	} else if len(r.GalleryURLs) > 0 {
		gallery = r.GalleryURLs
	}

	features := r.Features
	if features == nil {
		features = []string{}
	}

	product := models.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Category:    models.Category(r.Category),
		Image:       image,
		Gallery:     gallery,
		Gradient:    r.Gradient,
		Features:    features,
		IsNew:       r.IsNew,
	}
	if r.PublishedAt != nil {
		product.PublishedAt = *r.PublishedAt
	}
	return product
}
