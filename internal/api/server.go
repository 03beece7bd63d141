// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/grimoire are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/grimoire/internal/core/boss"
	"github.com/taibuivan/grimoire/internal/core/item"
	"github.com/taibuivan/grimoire/internal/platform/config"
	"github.com/taibuivan/grimoire/internal/platform/constants"
	"github.com/taibuivan/grimoire/internal/platform/i18n"
	"github.com/taibuivan/grimoire/internal/platform/middleware"
	"github.com/taibuivan/grimoire/internal/platform/render"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 once the catalog is loaded.
	Readiness http.HandlerFunc

	// Item serves the item catalog.
	Item *item.Handler

	// Boss serves the boss catalog.
	Boss *boss.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, bundle *i18n.Bundle, h Handlers) *Server {
	r := NewRouter(ctx, cfg, log, bundle, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree. It is separate from [NewServer] so
// tests can drive it with httptest.
func NewRouter(ctx context.Context, cfg *config.Config, log *slog.Logger, bundle *i18n.Bundle, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/static/*", http.StripPrefix("/static/", render.StaticHandler()))

	// # UI Shell
	r.Group(func(ui chi.Router) {
		ui.Use(middleware.Locale(bundle))
		ui.Use(chimw.NoCache)

		ui.Get("/", func(writer http.ResponseWriter, request *http.Request) {
			http.Redirect(writer, request, "/items", http.StatusFound)
		})
		ui.Mount("/items", h.Item.Routes())
		ui.Mount("/bosses", h.Boss.Routes())
	})

	// # JSON API
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RateLimit(ctx))
		api.Use(middleware.CORS(cfg))
		api.Use(middleware.Locale(bundle))

		api.Mount("/items", h.Item.APIRoutes())
		api.Mount("/bosses", h.Boss.APIRoutes())
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
