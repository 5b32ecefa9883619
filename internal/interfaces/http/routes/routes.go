// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/domain/theme"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/pdf"
)

// Dependencies carries the constructed managers and services the route
// handlers work against.
type Dependencies struct {
	Config   *config.Config
	Log      *logrus.Logger
	Catalog  *catalog.Catalog
	Sessions *session.Manager
	Cart     *cart.Manager
	Wishlist *wishlist.Manager
	Theme    *theme.Manager
	Checkout *checkout.Service
	Orders   *order.Manager
	PDF      *pdf.Service
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Sessions, deps.Config)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
		auth.GET("/session", authHandler.Session)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Config))
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}

	rg.GET("/categories", catalogHandler.ListCategories)
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Catalog)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCount)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
	}
}

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Wishlist, deps.Catalog)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddItem)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveItem)
		wishlistGroup.POST("/items/:id/toggle", wishlistHandler.ToggleItem)
	}
}

// SetupThemeRoutes sets up theme preference routes
func SetupThemeRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	themeHandler := handlers.NewThemeHandler(deps.Theme)

	themeGroup := rg.Group("/theme")
	{
		themeGroup.GET("", themeHandler.GetTheme)
		themeGroup.PUT("", themeHandler.SetTheme)
	}
}

// SetupCheckoutRoutes sets up checkout and order history routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, deps.Orders, deps.PDF, deps.Log)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("/quote", checkoutHandler.GetQuote)

		protected := checkoutGroup.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Config))
		{
			protected.POST("", checkoutHandler.PlaceOrder)
		}
	}

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(deps.Config))
	{
		orders.GET("", checkoutHandler.ListOrders)
		orders.GET("/:id", checkoutHandler.GetOrder)
		orders.GET("/:id/receipt", checkoutHandler.GetReceipt)
	}
}

// SetupRoutes sets up all application routes
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	SetupAuthRoutes(rg, deps)
	SetupCatalogRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupWishlistRoutes(rg, deps)
	SetupThemeRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
}
