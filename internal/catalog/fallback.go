package catalog

import (
	"github.com/rsat/josephjoseph-chile/internal/models"
)

// fallbackCatalog is the hand-curated dataset the storefront renders when
// the catalog store is unreachable. It is static and never mutated at
// runtime; ids are slugs rather than store-assigned documentIds.
var fallbackCatalog = []models.Product{
	{
		ID:          "index",
		Name:        "Index™",
		Description: "Set de tablas de cortar con código de colores",
		Category:    models.CategoryPreparacion,
		Gradient:    "linear-gradient(135deg, #E8E8E8 0%, #F5F5F5 100%)",
		Features: []string{
			"Código de colores para evitar contaminación cruzada",
			"Diseño compacto que ahorra espacio",
			"Aptas para lavavajillas",
		},
	},
	{
		ID:          "nest",
		Name:        "Nest™",
		Description: "Bowls y coladores que se apilan para ahorrar espacio",
		Category:    models.CategoryPreparacion,
		Gradient:    "linear-gradient(135deg, #D4E8E4 0%, #E8F4F2 100%)",
		Features: []string{
			"9 piezas que se apilan en el espacio de una",
			"Incluye bowls mezcladores, coladores y medidores",
			"Base antideslizante",
		},
	},
	{
		ID:          "elevate",
		Name:        "Elevate™",
		Description: "Utensilios de cocina con base elevada",
		Category:    models.CategoryUtensilios,
		Gradient:    "linear-gradient(135deg, #F5E6D3 0%, #FFF5E8 100%)",
		Features: []string{
			"Base elevada que evita el contacto con superficies",
			"Diseño higiénico y funcional",
			"Resistente al calor hasta 200°C",
		},
	},
	{
		ID:          "tri-scale",
		Name:        "Tri-Scale™",
		Description: "Balanza de cocina plegable compacta",
		Category:    models.CategoryAccesorios,
		Gradient:    "linear-gradient(135deg, #E8E8E8 0%, #F0F0F0 100%)",
		Features: []string{
			"Se pliega para almacenamiento compacto",
			"Pantalla digital de fácil lectura",
			"Pesa hasta 5kg con precisión de 1g",
		},
	},
	{
		ID:          "dial",
		Name:        "Dial™",
		Description: "Contenedor de almacenamiento con fecha ajustable",
		Category:    models.CategoryAlmacenamiento,
		Gradient:    "linear-gradient(135deg, #D8E8F0 0%, #E8F4F8 100%)",
		Features: []string{
			"Dial de fecha para recordar frescura",
			"Cierre hermético",
			"Libre de BPA",
		},
	},
	{
		ID:          "knives",
		Name:        "Set de Cuchillos",
		Description: "Cuchillos de acero inoxidable con diseño premium",
		Category:    models.CategoryPreparacion,
		Gradient:    "linear-gradient(135deg, #C8C8C8 0%, #E0E0E0 100%)",
		Features: []string{
			"Acero inoxidable japonés de alta calidad",
			"Mangos ergonómicos antideslizantes",
			"Incluye funda protectora",
		},
	},
	{
		ID:          "extend",
		Name:        "Extend™ Steel",
		Description: "Escurridor de platos expandible",
		Category:    models.CategoryOrganizacion,
		Image:       "https://www.josephjoseph.com/cdn/shop/files/851692_PDP_01.jpg",
		Gradient:    "linear-gradient(135deg, #E8E8E8 0%, #F5F5F5 100%)",
		Features: []string{
			"Se extiende para mayor capacidad",
			"Bandeja de drenaje integrada",
			"Acabado en acero inoxidable",
		},
		IsNew: true,
	},
	{
		ID:          "eclipse",
		Name:        "Eclipse™",
		Description: "Tendedero de ropa de 3 niveles",
		Category:    models.CategoryHogar,
		Image:       "https://www.josephjoseph.com/cdn/shop/files/Media_Cutout_900x730_4c78bbf2-8859-46f3-ac03-590353073288.jpg",
		Gradient:    "linear-gradient(135deg, #F5F0E8 0%, #FFFBF5 100%)",
		Features: []string{
			"Tres niveles de secado",
			"Diseño plegable",
			"20 metros de espacio de secado",
		},
		IsNew: true,
	},
}

// Fallback returns a copy of the bundled catalog so callers cannot mutate
// the shared dataset.
func Fallback() []models.Product {
	out := make([]models.Product, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}
