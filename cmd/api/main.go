// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the gate HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from .env and environment variables.
//  3. Build the principal, token service and credential gate.
//  4. Wire HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/yomira-gate/internal/api"
	"github.com/taibuivan/yomira-gate/internal/asset"
	"github.com/taibuivan/yomira-gate/internal/auth"
	"github.com/taibuivan/yomira-gate/internal/gate"
	"github.com/taibuivan/yomira-gate/internal/platform/config"
	"github.com/taibuivan/yomira-gate/internal/platform/constants"
	"github.com/taibuivan/yomira-gate/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

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
		slog.String("port", cfg.ServerPort),
		slog.String("asset_path", cfg.AssetPath),
	)

	// ── 3. Security Primitives ────────────────────────────────────────────
	tokenService, err := sec.NewTokenService([]byte(cfg.JWTSecret), nil)
	must(log, err, "initialize jwt service")

	// A broken hash is reported, not fatal: every login then fails with a 500.
	if cost, err := sec.HashCost(cfg.UserPasswordHash); err != nil {
		log.Warn("password_hash_invalid", slog.Any("error", err))
	} else {
		log.Debug("password_hash_loaded", slog.Int("cost", cost))
	}

	credentialGate := gate.New(cfg.BasicAuthUser, cfg.BasicAuthPass)
	principal := auth.DefaultPrincipal(cfg.UserPasswordHash)

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(principal, tokenService)
	authHandler := auth.NewHandler(authService)
	assetHandler := asset.NewHandler(cfg.AssetPath)

	if err := assetHandler.Check(); err != nil {
		// Not fatal: the download route answers 500 until the file appears.
		log.Warn("asset_unavailable", slog.Any("error", err))
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckAsset: assetHandler.Check,
	}, log)

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Gate:      credentialGate.Middleware,
		Auth:      authHandler,
		Asset:     assetHandler,
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
		os.Exit(1)
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger used for the whole process.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
