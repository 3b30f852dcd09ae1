package models

import (
	"time"
)

// Category is the fixed taxonomy the storefront navigates by. Upstream
// product types are free text and get mapped onto this set; anything
// unclassifiable lands in DefaultCategory instead of being rejected.
type Category string

const (
	CategoryCoccion        Category = "Cocción"
	CategoryPreparacion    Category = "Preparación"
	CategoryUtensilios     Category = "Utensilios"
	CategoryAlmacenamiento Category = "Almacenamiento"
	CategoryOrganizacion   Category = "Organización"
	CategoryAccesorios     Category = "Accesorios"
	CategoryHogar          Category = "Hogar"
)

const DefaultCategory = CategoryAccesorios

func Categories() []Category {
	return []Category{
		CategoryCoccion,
		CategoryPreparacion,
		CategoryUtensilios,
		CategoryAlmacenamiento,
		CategoryOrganizacion,
		CategoryAccesorios,
		CategoryHogar,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog record in the shape the rendering layer consumes.
// The ID is assigned by the catalog store on creation; records bundled in
// the fallback dataset carry hand-picked slugs instead.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Image       string    `json:"image,omitempty"`
	Gallery     []string  `json:"gallery,omitempty"`
	Gradient    string    `json:"gradient"`
	Features    []string  `json:"features"`
	IsNew       bool      `json:"isNew"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}
