// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListProducts returns a filtered, sorted, paginated product listing
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	q := catalog.Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort_by"),
	}

	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MinPrice = p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MaxPrice = p
		}
	}
	if c.Query("featured") == "true" {
		q.Featured = true
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		q.Limit = v
	}

	result := h.catalog.List(q)

	c.JSON(http.StatusOK, gin.H{
		"data": result,
	})
}

// GetProduct returns a single product by id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// ListCategories returns all product categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.catalog.Categories(),
	})
}
