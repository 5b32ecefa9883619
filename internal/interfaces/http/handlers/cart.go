// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CartHandler handles shopping cart operations
type CartHandler struct {
	cart    *cart.Manager
	catalog *catalog.Catalog
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartManager *cart.Manager, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{
		cart:    cartManager,
		catalog: cat,
	}
}

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents a request to set a cart line quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart contents with derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":  h.cart.Items(),
			"totals": h.cart.CalculateTotals(),
		},
	})
}

// AddItem adds a product to the cart, merging with an existing line
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	h.cart.AddToCart(product, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data": gin.H{
			"items":  h.cart.Items(),
			"totals": h.cart.CalculateTotals(),
		},
	})
}

// UpdateItem sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cart.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data": gin.H{
			"items":  h.cart.Items(),
			"totals": h.cart.CalculateTotals(),
		},
	})
}

// RemoveItem removes a product from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveFromCart(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data": gin.H{
			"items":  h.cart.Items(),
			"totals": h.cart.CalculateTotals(),
		},
	})
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// GetCount returns the total quantity across all cart lines, for
// the header badge.
func (h *CartHandler) GetCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"count": h.cart.ItemCount(),
		},
	})
}
