package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	chainstore "github.com/maelys-dev/sweetshop-cli/internal/adapters/credstore/chain"
	tomlrepo "github.com/maelys-dev/sweetshop-cli/internal/adapters/repo/toml"
	"github.com/maelys-dev/sweetshop-cli/internal/adapters/rest"
	"github.com/maelys-dev/sweetshop-cli/internal/application"
	"github.com/maelys-dev/sweetshop-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	sessions *application.SessionStore
	auth     *application.AuthService
	cart     *application.CartService
	wishlist *application.WishlistService
	catalog  *application.CatalogService
	orders   *application.OrderService
	admin    *application.AdminService
}

func wireApp() (*app, error) {
	sessionRepo, err := tomlrepo.NewSessionRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	credStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".sweetshop", "credentials"))
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}

	bus := application.NewLogoutBus()
	sessions := application.NewSessionStore(sessionRepo, credStore, bus)

	client := rest.NewClient(
		rest.Config{BaseURL: envOrDefault("SWEETSHOP_API_URL", "http://localhost:3000/api")},
		http.DefaultClient,
		sessions.Token,
		sessions.Invalidate,
	)

	cart := application.NewCartService(rest.NewCartAPI(client), sessions, bus)
	catalogAPI := rest.NewCatalogAPI(client)

	return &app{
		sessions: sessions,
		auth:     application.NewAuthService(rest.NewAuthAPI(client), sessions),
		cart:     cart,
		wishlist: application.NewWishlistService(rest.NewWishlistAPI(client), sessions, bus),
		catalog:  application.NewCatalogService(catalogAPI),
		orders:   application.NewOrderService(rest.NewOrderAPI(client), cart, sessions, ports.SystemClock{}),
		admin:    application.NewAdminService(rest.NewAdminAPI(client), catalogAPI, sessions),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
