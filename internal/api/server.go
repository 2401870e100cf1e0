// Package api provides the HTTP API server and handlers for the
// Inkwell publishing server.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/urls"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store        *store.Store
	services     *Services
	urls         *urls.Builder
	router       *chi.Mux
	api          huma.API
	logger       *slog.Logger
	writeLimiter *RateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, urlBuilder *urls.Builder, writeLimiter *RateLimiter, logger *slog.Logger) *Server {
	s := &Server{
		store:        st,
		services:     services,
		urls:         urlBuilder,
		router:       chi.NewRouter(),
		logger:       logger,
		writeLimiter: writeLimiter,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Inkwell API", "1.0.0")
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(WriteRateLimitMiddleware(s.writeLimiter, s.logger))
}

// setupRoutes configures all HTTP routes. JSON operations go through
// the OpenAPI layer; the XML projections and the feed are plain
// handlers because their output is not JSON.
func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerArticleRoutes()
	s.registerCommentRoutes()
	s.registerShareRoutes()
	s.registerSearchRoutes()

	s.router.Get("/feed", s.handleFeed)
	s.router.Get("/sitemap.xml", s.handleSitemap)
}
