// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/domain/theme"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/email"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Open the persistent key-value store
	store, err := storage.Open(cfg)
	if err != nil {
		appLog.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	// Seed the demo catalog
	cat := catalog.NewSeeded()

	// Construct the state managers; each rehydrates its slice of
	// persisted state on the way up.
	sessions := session.NewManager(store, cfg, appLog)
	cartManager := cart.NewManager(store, appLog)
	wishlistManager := wishlist.NewManager(store, appLog)
	themeManager := theme.NewManager(store, appLog)
	orders := order.NewManager(store, appLog)

	seedKnownUsers(sessions, appLog)

	mailer := email.NewService(cfg, appLog)
	checkoutService := checkout.NewService(cartManager, sessions, orders, cfg, appLog, mailer)

	deps := &routes.Dependencies{
		Config:   cfg,
		Log:      appLog,
		Catalog:  cat,
		Sessions: sessions,
		Cart:     cartManager,
		Wishlist: wishlistManager,
		Theme:    themeManager,
		Checkout: checkoutService,
		Orders:   orders,
		PDF:      pdf.NewService(cfg),
	}

	server := http.NewServer(deps, store)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLog.Fatalf("failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("server shutdown completed")
}

// seedKnownUsers registers the demo accounts that log in with a fixed
// profile instead of a synthesized one.
func seedKnownUsers(sessions *session.Manager, appLog *logrus.Logger) {
	known := []struct {
		user     session.User
		password string
	}{
		{
			user: session.User{
				ID:    "user-admin-001",
				Email: "admin@example.com",
				Name:  "Store Admin",
				Role:  session.RoleAdmin,
			},
			password: "Admin123!",
		},
		{
			user: session.User{
				ID:    "user-demo-001",
				Email: "demo@example.com",
				Name:  "Demo Shopper",
				Role:  session.RoleCustomer,
			},
			password: "Demo1234!",
		},
	}

	for _, k := range known {
		if err := sessions.RegisterKnownUser(k.user, k.password); err != nil {
			appLog.Warnf("failed to register known user %s: %v", k.user.Email, err)
		}
	}
}
