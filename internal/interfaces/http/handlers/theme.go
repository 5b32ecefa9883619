// internal/interfaces/http/handlers/theme.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/theme"
)

// ThemeHandler handles theme preference endpoints
type ThemeHandler struct {
	theme *theme.Manager
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themeManager *theme.Manager) *ThemeHandler {
	return &ThemeHandler{theme: themeManager}
}

// SetThemeRequest represents a request to change the theme
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme returns the current theme preference
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"theme": h.theme.Current(),
		},
	})
}

// SetTheme updates the theme preference
func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.theme.Set(req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown theme, expected light, dark or system",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme updated",
		"data": gin.H{
			"theme": h.theme.Current(),
		},
	})
}
