// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/pdf"
)

// CheckoutHandler handles checkout and order history endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
	orders   *order.Manager
	pdf      *pdf.Service
	log      *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler. pdfService may be nil
// when receipt generation is unavailable.
func NewCheckoutHandler(checkoutService *checkout.Service, orderManager *order.Manager, pdfService *pdf.Service, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutService,
		orders:   orderManager,
		pdf:      pdfService,
		log:      log,
	}
}

// GetQuote prices the current cart, optionally applying a coupon code
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	quote := h.checkout.GetQuote(c.Query("coupon"))

	c.JSON(http.StatusOK, gin.H{
		"data": quote,
	})
}

// PlaceOrder runs the simulated checkout and records the order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.checkout.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		default:
			h.log.WithError(err).Error("failed to place order")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// ListOrders returns the authenticated user's order history, newest first
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"orders": h.orders.List(userID),
		},
	})
}

// GetOrder returns a single order belonging to the authenticated user
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	o, err := h.orders.Get(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": o,
	})
}

// GetReceipt renders the order receipt as a downloadable PDF
func (h *CheckoutHandler) GetReceipt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	o, err := h.orders.Get(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	if h.pdf == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Receipt generation is not available",
		})
		return
	}

	buf, err := h.pdf.GenerateReceipt(o)
	if err != nil {
		h.log.WithError(err).Error("failed to generate receipt")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", o.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
