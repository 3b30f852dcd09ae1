package feed

// Product represents a product as published by the storefront JSON feed.
// The feed is read-only; these records are never written back.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	BodyHTML    string   `json:"body_html"`
	Vendor      string   `json:"vendor"`
	ProductType string   `json:"product_type"`
	Tags        []string `json:"tags"`
	Images      []Image  `json:"images"`
}

// Image represents a product image descriptor
type Image struct {
	ID       int64   `json:"id"`
	Src      string  `json:"src"`
	Position int     `json:"position"`
	Alt      *string `json:"alt"`
}

// productsResponse represents one page of the feed. An absent or empty
// products array signals the end of the feed.
type productsResponse struct {
	Products []Product `json:"products"`
}
