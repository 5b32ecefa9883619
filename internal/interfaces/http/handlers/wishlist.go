// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// WishlistHandler handles wishlist operations
type WishlistHandler struct {
	wishlist *wishlist.Manager
	catalog  *catalog.Catalog
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistManager *wishlist.Manager, cat *catalog.Catalog) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlistManager,
		catalog:  cat,
	}
}

// AddWishlistItemRequest represents a request to add a product id
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist returns the wishlist ids with resolved products
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	ids := h.wishlist.Items()

	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := h.catalog.GetProduct(id); err == nil {
			products = append(products, *p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":    ids,
			"products": products,
			"count":    h.wishlist.Count(),
		},
	})
}

// AddItem adds a product to the wishlist
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if _, err := h.catalog.GetProduct(req.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	h.wishlist.AddToWishlist(req.ProductID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist",
		"data": gin.H{
			"items": h.wishlist.Items(),
			"count": h.wishlist.Count(),
		},
	})
}

// RemoveItem removes a product from the wishlist
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	h.wishlist.RemoveFromWishlist(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist",
		"data": gin.H{
			"items": h.wishlist.Items(),
			"count": h.wishlist.Count(),
		},
	})
}

// ToggleItem atomically adds or removes a product from the wishlist
func (h *WishlistHandler) ToggleItem(c *gin.Context) {
	productID := c.Param("id")

	if _, err := h.catalog.GetProduct(productID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	added := h.wishlist.ToggleWishlist(productID)

	message := "Item removed from wishlist"
	if added {
		message = "Item added to wishlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"added": added,
			"items": h.wishlist.Items(),
			"count": h.wishlist.Count(),
		},
	})
}
