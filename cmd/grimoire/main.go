// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command grimoire serves the game catalog browser and its JSON API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Build the catalog source (file, HTTP, or PostgreSQL with migrations).
//  4. Start the one-shot catalog load in the background.
//  5. Wire renderer, services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// The server answers while the load is pending; the grid is empty until it
// finishes and shows the error view if it fails.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/language"

	"github.com/taibuivan/grimoire/internal/api"
	"github.com/taibuivan/grimoire/internal/catalog"
	"github.com/taibuivan/grimoire/internal/core/boss"
	"github.com/taibuivan/grimoire/internal/core/item"
	"github.com/taibuivan/grimoire/internal/platform/config"
	"github.com/taibuivan/grimoire/internal/platform/constants"
	"github.com/taibuivan/grimoire/internal/platform/i18n"
	"github.com/taibuivan/grimoire/internal/platform/migration"
	pgstore "github.com/taibuivan/grimoire/internal/platform/postgres"
	"github.com/taibuivan/grimoire/internal/platform/render"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
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
		slog.String("data_source", cfg.DataSource),
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Catalog Source ─────────────────────────────────────────────────
	var pool *pgxpool.Pool
	var source catalog.Source

	switch cfg.DataSource {
	case config.SourceHTTP:
		source = catalog.HTTPSource{URL: cfg.DataURL}
	case config.SourcePostgres:
		startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		startupCancel()
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		source = catalog.PostgresSource{DB: pool, Name: cfg.DocumentName}
	default:
		source = catalog.FileSource{Path: cfg.DataPath}
	}

	// ── 4. One-shot Load ──────────────────────────────────────────────────
	dataset := catalog.New(source, log)
	go func() {
		// Failures are logged and surfaced by the catalog itself.
		_ = dataset.Load(rootCtx)
	}()

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	bundle := i18n.New(language.Make(cfg.DefaultLanguage))
	renderer, err := render.New(bundle, log)
	must(log, err, "parse templates")

	health := api.HealthDependencies{CheckDataset: dataset.Check}
	if pool != nil {
		health.CheckDatabase = func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}
	}
	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Item:      item.NewHandler(item.NewService(dataset, log), renderer),
		Boss:      boss.NewHandler(boss.NewService(dataset, log), renderer),
	}

	server := api.NewServer(rootCtx, cfg, log, bundle, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
