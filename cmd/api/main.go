// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the World Wonders HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load and validate the embedded wonder catalogue.
//  4. Connect to Redis (only when REDIS_URL is set).
//  5. Load and validate the OpenAPI document.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/worldwonders/internal/api"
	"github.com/taibuivan/worldwonders/internal/platform/config"
	"github.com/taibuivan/worldwonders/internal/platform/constants"
	redisstore "github.com/taibuivan/worldwonders/internal/platform/redis"
	"github.com/taibuivan/worldwonders/internal/wonder"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Catalogue ──────────────────────────────────────────────────────
	catalog, err := wonder.Load()
	must(log, err, "load wonder catalogue")

	log.Info("catalog_loaded",
		slog.Int("wonders", catalog.Len()),
		slog.String("fingerprint", catalog.Fingerprint()),
	)

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var cache wonder.Cache
	var rdb *goredis.Client
	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()
		cache = wonder.NewRedisCache(rdb, cfg.CacheTTL)
	}

	// ── 5. API Documentation ──────────────────────────────────────────────
	docs, err := api.LoadDocs(startupCtx, api.DocsPath)
	must(log, err, "load openapi document")

	// ── 6. Wiring ─────────────────────────────────────────────────────────
	checks := []api.HealthCheck{api.CatalogCheck(catalog.Len)}
	if rdb != nil {
		checks = append(checks, api.HealthCheck{Name: "redis", Run: redisstore.HealthCheck(rdb)})
	}
	liveness, readiness := api.NewHealthHandlers(checks, log)

	wonderService := wonder.NewService(catalog, cache, log)
	wonderHandler := wonder.NewHandler(wonderService)

	// Cancelled on shutdown to stop background middleware goroutines.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Wonder:    wonderHandler,
		Docs:      docs,
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
