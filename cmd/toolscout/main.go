package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/config"
	"github.com/toolscout/toolscout/internal/db"
	dbRedis "github.com/toolscout/toolscout/internal/db/redis"
	logpkg "github.com/toolscout/toolscout/internal/logger"
	"github.com/toolscout/toolscout/internal/metrics"
	"github.com/toolscout/toolscout/internal/repository/hitcache"
	chiTransport "github.com/toolscout/toolscout/internal/transport/chi"
	"github.com/toolscout/toolscout/internal/transport/firecrawl"
	"github.com/toolscout/toolscout/internal/transport/serper"
	healthuc "github.com/toolscout/toolscout/internal/usecase/health"
	retrievaluc "github.com/toolscout/toolscout/internal/usecase/retrieval"
	"github.com/toolscout/toolscout/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting toolscout API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("serper_enabled", cfg.Sources.Serper.Enabled),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// Optional hit cache store
	var store db.Store
	if cfg.Cache.Enabled {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	sourceTimeout := time.Duration(cfg.Search.SourceTimeoutSec) * time.Second
	retryAttempts := uint(cfg.Search.RetryAttempts)

	// Primary source (required)
	primary := buildSource(firecrawl.New(&firecrawl.Config{
		APIKey:        cfg.Sources.Firecrawl.APIKey,
		BaseURL:       cfg.Sources.Firecrawl.BaseURL,
		Timeout:       sourceTimeout,
		RetryAttempts: retryAttempts,
		Logger:        logger,
	}), store, cfg.Cache.TTLSec, logger)

	// Secondary source (optional)
	var secondary retrievaluc.Source
	if cfg.Sources.Serper.Enabled {
		secondary = buildSource(serper.New(&serper.Config{
			APIKey:        cfg.Sources.Serper.APIKey,
			BaseURL:       cfg.Sources.Serper.BaseURL,
			Timeout:       sourceTimeout,
			RetryAttempts: retryAttempts,
			Logger:        logger,
		}), store, cfg.Cache.TTLSec, logger)
	}

	retrievalSvc := retrievaluc.New(primary, secondary, sourceTimeout, logger)

	// Health service. Pass nil interface (not typed nil pointer!) if cache is disabled.
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger)

	// Create chi server
	server := chiTransport.NewServer(retrievalSvc, healthSvc, cfg.Search.MaxResults, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildSource wraps a search source with the hit cache when a store is configured.
func buildSource(
	base retrievaluc.Source,
	store db.Store,
	ttlSec int,
	logger *zap.Logger,
) retrievaluc.Source {
	if store == nil {
		return base
	}
	return hitcache.New(
		base, store, time.Duration(ttlSec)*time.Second, metrics.SourceCacheTotal, logger,
	)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
