// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	sessions   *session.Manager
	jwtManager *auth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessions:   sessions,
		jwtManager: auth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

// Login authenticates a user and establishes the active session
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Login failed",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user":         user,
			"access_token": token,
			"expires_in":   int(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}

// Signup registers a new user and logs them in
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	user, err := h.sessions.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Signup failed",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"data": gin.H{
			"user":         user,
			"access_token": token,
			"expires_in":   int(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}

// Logout clears the active session
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Session reports the current session state
func (h *AuthHandler) Session(c *gin.Context) {
	user := h.sessions.CurrentUser()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user":             user,
			"is_authenticated": h.sessions.IsAuthenticated(),
			"is_admin":         h.sessions.IsAdmin(),
		},
	})
}
