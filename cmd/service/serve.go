package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

func newServeCmd(opts *serveOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load and validate configuration (fail fast)
	cfg, err := config.LoadFrom(opts.configDir, opts.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.App.Version == "dev" {
		cfg.App.Version = Version
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("profile", opts.profile),
	)

	// 3. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Seed the quote store
	seed, err := memory.LoadSeedFile(cfg.Quotes.SeedFile)
	if err != nil {
		return fmt.Errorf("loading seed: %w", err)
	}

	store := memory.NewStore(seed)

	// 5. Metrics and health
	if err := prometheus.Register(store.Collector()); err != nil {
		return fmt.Errorf("registering store metrics: %w", err)
	}

	quoteMetrics, err := app.NewQuoteMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering quote store health check: %w", err)
	}

	// 6. Application service and handlers
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:   store,
		Metrics: quoteMetrics,
		Logger:  logger,
	})

	baseURL := cfg.Site.BaseURL(cfg.Server.Port)

	homeHandler, err := handlers.NewHomeHandler(baseURL)
	if err != nil {
		return fmt.Errorf("rendering home page: %w", err)
	}

	// 7. HTTP server
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: telProvider.Enabled(),
		Timeout:        cfg.Server.RequestTimeout,
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
		HomeHandler:    homeHandler,
		HealthHandler:  handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
	})

	serverErr, err := server.Start(ctx)
	if err != nil {
		return err
	}

	logger.Info("quote service ready",
		slog.String("addr", server.Addr()),
		slog.String("public_url", baseURL),
		slog.Int("seed_quotes", len(seed)),
		slog.String("seed_source", seedSource(cfg.Quotes.SeedFile)),
	)

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

func seedSource(path string) string {
	if path == "" {
		return "built-in"
	}

	return path
}

// waitForShutdown blocks until a signal arrives, ctx ends, or the server
// fails, then drains in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
