// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires the HTTP router, middleware chain, and domain handlers
into a runnable [http.Server].

Architecture:

  - This package is the composition root of the HTTP transport (chi router).
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/shopventory/internal/lists"
	"github.com/taibuivan/shopventory/internal/platform/config"
	"github.com/taibuivan/shopventory/internal/platform/constants"
	"github.com/taibuivan/shopventory/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the HTTP handler sets mounted by the server.
type Handlers struct {
	// Liveness serves /health and succeeds while the process is alive.
	Liveness http.HandlerFunc

	// Readiness serves /ready and succeeds when every dependency answers.
	Readiness http.HandlerFunc

	// Lists serves the user's shopping and inventory lists.
	Lists *lists.Handler
}

// # Server Initialization

// NewServer builds the router with the full middleware chain and registers
// every route group. ctx bounds background work such as rate-limiter sweeps.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) *Server {
	router := chi.NewRouter()
	limiter := middleware.NewRateLimiter(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(log))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(limiter.Middleware)
	router.Use(middleware.PanicRecovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Authenticate(verifier))
	router.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	router.Get("/health", handlers.Liveness)
	router.Get("/ready", handlers.Readiness)

	// # Application API
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/lists", handlers.Lists.Routes())
	})

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the fully wired router.
func (server *Server) Handler() http.Handler {
	return server.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server and blocks until it stops.
func (server *Server) ListenAndServe() error {
	server.log.Info("server_starting", slog.String("addr", server.httpServer.Addr))
	return server.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (server *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.httpServer.Shutdown(ctx)
}
