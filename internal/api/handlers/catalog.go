package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsat/josephjoseph-chile/internal/catalog"
	"github.com/rsat/josephjoseph-chile/internal/logger"
	"github.com/rsat/josephjoseph-chile/internal/models"
)

// CatalogHandler serves catalog reads to the storefront. The underlying
// service resolves every failure to fallback data, so these endpoints
// only ever answer 200 (or 404 for an unknown id). The renderer sees
// degraded data, never an error.
type CatalogHandler struct {
	catalog *catalog.Service
	logger  *logger.Logger
}

func NewCatalogHandler(svc *catalog.Service, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: svc,
		logger:  logger,
	}
}

// List serves the catalog; ?category= and ?new=true narrow it.
func (h *CatalogHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"data": h.catalog.GetProductsByCategory(models.Category(category))})
		return
	}
	if c.Query("new") == "true" {
		c.JSON(http.StatusOK, gin.H{"data": h.catalog.GetNewProducts()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.catalog.GetProducts()})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	product := h.catalog.GetProductByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.catalog.GetCategories()})
}
