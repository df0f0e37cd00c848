// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/ratings/internal/catalog/home"
	"github.com/taibuivan/ratings/internal/catalog/movie"
	"github.com/taibuivan/ratings/internal/catalog/series"
	"github.com/taibuivan/ratings/internal/platform/config"
	"github.com/taibuivan/ratings/internal/platform/constants"
	"github.com/taibuivan/ratings/internal/platform/middleware"
	"github.com/taibuivan/ratings/internal/session"
	"github.com/taibuivan/ratings/internal/upload"
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
	// Liveness is the /health handler. It returns 200 while the process runs.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when the database answers.
	Readiness http.HandlerFunc

	// Session handles the owner login, check and logout routes.
	Session *session.Handler

	// Movies manages the movie catalog.
	Movies *movie.Handler

	// Series manages series, seasons and episode ratings.
	Series *series.Handler

	// Home serves the newest entries of both catalogs.
	Home *home.Handler

	// Upload stores and serves assets.
	Upload *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. policy decides which mutating requests the
// checkpoint admits.
func NewServer(cfg *config.Config, log *slog.Logger, policy middleware.AuthorizationPolicy, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. The checkpoint runs
	// before routing so no mutating route can be reached without the marker.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Checkpoint(policy))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Public Assets
	r.Handle(constants.UploadURLPrefix+"*", h.Upload.Files())

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Session.Routes())
		api.Mount("/movies", h.Movies.Routes())
		api.Mount("/series", h.Series.Routes())
		api.Mount("/recent", h.Home.Routes())
		api.Mount("/upload", h.Upload.Routes())
	})

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

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
