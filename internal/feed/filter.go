package feed

import (
	"strings"
)

// Keyword sets deciding catalog eligibility. Product types are matched
// against the full list, tags only against the shorter one, mirroring how
// the storefront curates its kitchen range.
var (
	kitchenTypeKeywords = []string{
		"kitchen", "cook", "knife", "board", "utensil",
		"storage", "wok", "pan", "organis",
	}
	kitchenTagKeywords = []string{"kitchen", "cook"}
)

// KitchenEligible reports whether a product belongs in the catalog: it
// needs at least one image and a kitchen-related product type or tag.
func (p Product) KitchenEligible() bool {
	if len(p.Images) == 0 {
		return false
	}

	productType := strings.ToLower(p.ProductType)
	for _, kw := range kitchenTypeKeywords {
		if strings.Contains(productType, kw) {
			return true
		}
	}

	for _, tag := range p.Tags {
		lowered := strings.ToLower(tag)
		for _, kw := range kitchenTagKeywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
	}

	return false
}

// FilterKitchen keeps the catalog-eligible products, preserving feed order.
func FilterKitchen(products []Product) []Product {
	eligible := make([]Product, 0, len(products))
	for _, p := range products {
		if p.KitchenEligible() {
			eligible = append(eligible, p)
		}
	}
	return eligible
}
