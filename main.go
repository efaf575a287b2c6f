// ABOUTME: Entry point for the bookshelf review service
// ABOUTME: Provides an HTTP API for catalog search and per-user book reviews

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/markalston/bookshelf/cache"
	"github.com/markalston/bookshelf/config"
	"github.com/markalston/bookshelf/handlers"
	"github.com/markalston/bookshelf/logger"
	"github.com/markalston/bookshelf/middleware"
	"github.com/markalston/bookshelf/services"
	"github.com/markalston/bookshelf/store"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Bookshelf Backend")

	// Initialize cache and stores
	c := cache.New()
	catalog := store.NewCatalog()
	users := store.NewUserDirectory()
	slog.Info("Catalog seeded", "books", catalog.Count())

	// Initialize auth services
	tokenTTL := time.Duration(cfg.TokenTTL) * time.Second
	tokens := services.NewTokenService([]byte(cfg.TokenSigningKey), tokenTTL)
	sessions := services.NewSessionService(c, tokenTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c, catalog, users, tokens, sessions)

	mux := http.NewServeMux()
	registerRoutes(mux, h, cfg, sessions, tokens)

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// registerRoutes wires every route from the handler table with its middleware
// chain: logging, CORS, optional CSRF, rate limiting, and the session gate on
// protected routes.
func registerRoutes(mux *http.ServeMux, h *handlers.Handler, cfg *config.Config, sessions *services.SessionService, tokens *services.TokenService) {
	var authLimiter, writeLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		authLimiter = middleware.NewRateLimiter(cfg.RateLimitAuth, time.Minute)
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrite, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
	}

	gate := middleware.Auth(sessions, tokens)

	for _, rt := range h.Routes() {
		chain := []func(http.HandlerFunc) http.HandlerFunc{
			middleware.LogRequest,
			middleware.CORS,
		}

		if cfg.CSRFEnabled {
			chain = append(chain, middleware.CSRF())
		}

		switch rt.RateClass {
		case handlers.RateClassAuth:
			chain = append(chain, middleware.RateLimit(authLimiter, middleware.ClientIP))
		case handlers.RateClassWrite:
			chain = append(chain, middleware.RateLimit(writeLimiter, middleware.SessionKey))
		default:
			chain = append(chain, middleware.RateLimit(defaultLimiter, middleware.ClientIP))
		}

		if rt.Protected {
			chain = append(chain, gate)
		}

		mux.HandleFunc(rt.Method+" "+rt.Path, middleware.Chain(rt.Handler, chain...))
	}
}
