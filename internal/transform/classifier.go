package transform

import (
	"strings"

	"github.com/rsat/josephjoseph-chile/internal/models"
)

// categoryRules is a first-match-wins priority list, not a set. Several
// keywords can match the same input ("kitchen storage bin" matches both
// "storage" and "bins"), so the order is load-bearing and pinned by tests.
var categoryRules = []struct {
	keyword  string
	category models.Category
}{
	{"woks", models.CategoryCoccion},
	{"frying pans", models.CategoryCoccion},
	{"saucepans", models.CategoryCoccion},
	{"cookware", models.CategoryCoccion},
	{"chopping boards", models.CategoryPreparacion},
	{"knives", models.CategoryPreparacion},
	{"knife sets", models.CategoryPreparacion},
	{"kitchen knives", models.CategoryPreparacion},
	{"utensils", models.CategoryUtensilios},
	{"kitchen tools", models.CategoryUtensilios},
	{"gadgets", models.CategoryUtensilios},
	{"can openers", models.CategoryUtensilios},
	{"storage", models.CategoryAlmacenamiento},
	{"food storage", models.CategoryAlmacenamiento},
	{"containers", models.CategoryAlmacenamiento},
	{"bins", models.CategoryAlmacenamiento},
	{"organisers", models.CategoryOrganizacion},
	{"organizers", models.CategoryOrganizacion},
	{"dish racks", models.CategoryOrganizacion},
	{"drainers", models.CategoryOrganizacion},
	{"scales", models.CategoryAccesorios},
	{"measuring", models.CategoryAccesorios},
}

// Classify maps a free-text product type plus its tags onto the fixed
// taxonomy. The first rule whose keyword appears in the type or in the
// joined tag string wins; unmatched inputs fall back to the default
// category rather than being rejected.
func Classify(productType string, tags []string) models.Category {
	loweredType := strings.ToLower(productType)
	tagStr := strings.ToLower(strings.Join(tags, " "))

	for _, rule := range categoryRules {
		if strings.Contains(loweredType, rule.keyword) || strings.Contains(tagStr, rule.keyword) {
			return rule.category
		}
	}

	return models.DefaultCategory
}
