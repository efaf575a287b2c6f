// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds a full server with the production middleware chains

package e2e

import (
	"bytes"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/markalston/bookshelf/cache"
	"github.com/markalston/bookshelf/config"
	"github.com/markalston/bookshelf/handlers"
	"github.com/markalston/bookshelf/middleware"
	"github.com/markalston/bookshelf/services"
	"github.com/markalston/bookshelf/store"
)

// testConfig returns a config suitable for e2e runs: insecure cookies so the
// jar accepts them over plain http, and rate limiting off unless a test
// turns it on.
func testConfig() *config.Config {
	return &config.Config{
		Port:             "0",
		CookieSecure:     false,
		TokenSigningKey:  "e2e-test-key",
		TokenTTL:         3600,
		SearchCacheTTL:   30,
		CSRFEnabled:      false,
		RateLimitEnabled: false,
		RateLimitAuth:    5,
		RateLimitWrite:   10,
		RateLimitDefault: 100,
	}
}

// newTestServer starts a server wired exactly like production: route table,
// logging, CORS, optional CSRF, rate limits, and the session gate.
func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	if cfg == nil {
		cfg = testConfig()
	}

	c := cache.New()
	catalog := store.NewCatalog()
	users := store.NewUserDirectory()

	tokenTTL := time.Duration(cfg.TokenTTL) * time.Second
	tokens := services.NewTokenService([]byte(cfg.TokenSigningKey), tokenTTL)
	sessions := services.NewSessionService(c, tokenTTL)

	h := handlers.NewHandler(cfg, c, catalog, users, tokens, sessions)

	var authLimiter, writeLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		authLimiter = middleware.NewRateLimiter(cfg.RateLimitAuth, time.Minute)
		writeLimiter = middleware.NewRateLimiter(cfg.RateLimitWrite, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
	}

	gate := middleware.Auth(sessions, tokens)

	mux := http.NewServeMux()
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

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// newClient returns an HTTP client with a cookie jar, so sessions established
// by login carry over to subsequent requests like a browser.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// doJSON sends a request with a JSON body and returns the response.
func doJSON(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

// do sends a bodyless request and returns the response.
func do(t *testing.T, client *http.Client, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}
