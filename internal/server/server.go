// Package server exposes the analytics engine over HTTP and serves the
// single-page frontend with history-mode routing.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"birdscope/internal/analyze"
	"birdscope/internal/config"
	"birdscope/internal/model"
	"birdscope/internal/store/timelinedb"
)

// TimelineLoader resolves a handle to its recent posts, newest first.
type TimelineLoader interface {
	Timeline(ctx context.Context, handle string) ([]model.Post, error)
}

// Server is the HTTP front of the engine.
type Server struct {
	server *http.Server
	router *chi.Mux
}

// New wires the router. db may be nil; it is only used for the report
// history log.
func New(cfg config.ServerConfig, loader TimelineLoader, analyzer *analyze.Analyzer, db *timelinedb.DB) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h := &userInfoHandler{loader: loader, analyzer: analyzer, db: db}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})
		r.Get("/user-info", h.ServeHTTP)
	})

	if cfg.StaticDir != "" {
		router.NotFound(spaHandler(cfg.StaticDir))
	}

	return &Server{
		server: &http.Server{Addr: cfg.Addr, Handler: router},
		router: router,
	}
}

// Handler returns the underlying router, for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
