package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/config"
	"github.com/sanchez1595/Personal-finance/internal/domain"
	"github.com/sanchez1595/Personal-finance/internal/handler"
	"github.com/sanchez1595/Personal-finance/internal/infra/cache"
	"github.com/sanchez1595/Personal-finance/internal/infra/memory"
	"github.com/sanchez1595/Personal-finance/internal/infra/observability"
	"github.com/sanchez1595/Personal-finance/internal/infra/resilience"
	"github.com/sanchez1595/Personal-finance/internal/infra/supabase"
	"github.com/sanchez1595/Personal-finance/internal/port"
	"github.com/sanchez1595/Personal-finance/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("use_supabase", cfg.SupabaseEnabled()),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
		zap.Bool("otel_enabled", cfg.OTelEnabled),
		zap.Bool("dev_auth", cfg.DevAuth),
	)

	// Amounts go out as JSON numbers, the way the web app reads them.
	decimal.MarshalJSONWithoutQuotes = true

	// --- Tracing ---
	shutdown, err := observability.InitTracer(context.Background(), cfg.OTLPEndpoint, "personal-finance-bfa", cfg.OTelEnabled)
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	categoryCache := cache.New[[]domain.Category](cfg.CacheTTL)
	defer categoryCache.Close()

	// --- Store ---
	var store port.FinanceStore
	if cfg.SupabaseEnabled() {
		logger.Info("using Supabase as data backend", zap.String("supabase_url", cfg.SupabaseURL))
		guard := resilience.NewGuard("supabase", resilience.Config{
			MaxRetries:     cfg.MaxRetries,
			InitialBackoff: cfg.InitialBackoff,
			MaxConcurrency: cfg.MaxConcurrency,
		})
		store = supabase.NewClient(
			&http.Client{Timeout: cfg.HTTPTimeout},
			cfg.SupabaseURL,
			cfg.SupabaseAnonKey,
			cfg.SupabaseServiceKey,
			guard,
			logger,
		)
	} else {
		logger.Warn("Supabase not configured, using in-memory store (data is lost on restart)")
		store = memory.New()
	}

	// --- Services ---
	financeSvc := service.NewFinanceService(store, categoryCache, metrics, logger)

	var verifier handler.TokenVerifier
	if cfg.JWTSecret != "" {
		verifier = service.NewTokenVerifier(cfg.JWTSecret)
	} else if !cfg.DevAuth {
		logger.Warn("SUPABASE_JWT_SECRET is empty and DEV_AUTH is off: every /v1 request will be rejected")
	}
	if cfg.DevAuth {
		logger.Warn("DEV_AUTH enabled: X-User-ID header is trusted")
	}

	// --- Router ---
	auth := handler.AuthMiddleware(verifier, cfg.DevAuth, logger)
	router := handler.NewRouter(financeSvc, auth, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
