//go:build integration

package integration

import (
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"time"

	"github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// seedSize is the number of quotes in the built-in seed.
const seedSize = 10

// newAppServer starts the fully wired service over a fresh built-in seed.
// The caller closes the returned server.
func newAppServer() (*httptest.Server, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore(memory.DefaultSeed())
	service := app.NewQuoteService(app.QuoteServiceConfig{Store: store, Logger: logger})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		return nil, err
	}

	srv := http.New(&config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           config.DefaultServerPort,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		RequestTimeout: 5 * time.Second,
		MaxRequestSize: config.DefaultMaxRequestSize,
	}, logger)

	ts := httptest.NewUnstartedServer(srv.Engine())

	home, err := handlers.NewHomeHandler("http://" + ts.Listener.Addr().String())
	if err != nil {
		return nil, err
	}

	http.SetupRouter(srv.Engine(), http.RouterConfig{
		ServiceName:   "quote-service",
		Timeout:       5 * time.Second,
		QuoteHandler:  handlers.NewQuoteHandler(service),
		HomeHandler:   home,
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
	})

	ts.Start()

	return ts, nil
}

func newClient() *nethttp.Client {
	return &nethttp.Client{Timeout: 10 * time.Second}
}
