// Copyright (c) 2026 Bookden. All rights reserved.
// Author: dev@bookden.app

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/server are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bookden/bookden/internal/author"
	"github.com/bookden/bookden/internal/book"
	"github.com/bookden/bookden/internal/comment"
	"github.com/bookden/bookden/internal/favorite"
	"github.com/bookden/bookden/internal/genre"
	"github.com/bookden/bookden/internal/platform/config"
	"github.com/bookden/bookden/internal/platform/constants"
	"github.com/bookden/bookden/internal/platform/middleware"
	"github.com/bookden/bookden/internal/rating"
	"github.com/bookden/bookden/internal/review"
	"github.com/bookden/bookden/internal/user"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Home renders the landing page with library-wide counts.
	Home http.HandlerFunc

	// Book handles the catalogue pages, search, and per-author listings.
	Book *book.Handler

	// Author manages the author registry.
	Author *author.Handler

	// Genre manages the genre registry.
	Genre *genre.Handler

	// User manages reader accounts.
	User *user.Handler

	// Review handles written reviews and their aggregation pages.
	Review *review.Handler

	// Rating handles numeric scores and the top-rated ranking.
	Rating *rating.Handler

	// Comment handles replies to reviews.
	Comment *comment.Handler

	// Favorite handles per-user favorite books.
	Favorite *favorite.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application Pages
	// Every page lives in a flat URL space, so route groups register at the root.
	r.Get("/", h.Home)
	h.Book.RegisterRoutes(r)
	h.Author.RegisterRoutes(r)
	h.Genre.RegisterRoutes(r)
	h.User.RegisterRoutes(r)
	h.Review.RegisterRoutes(r)
	h.Rating.RegisterRoutes(r)
	h.Comment.RegisterRoutes(r)
	h.Favorite.RegisterRoutes(r)

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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
