// Package api serves the matrix derivations and graph rendering over HTTP.
//
// Every request is independent: the handlers hold no mutable state, so a
// single [Server] may serve any number of concurrent requests.
//
// Routes:
//
//	GET  /health            liveness probe
//	POST /api/v1/derive     {"weights": [[...]]} → adjacency, power2, power3
//	POST /api/v1/scene      {"weights": [[...]]} → node positions and edge geometry
//	POST /api/v1/render     {"weights": [[...]]} → SVG drawing of the graph
//
// scene and render accept ?seed=N for reproducible layouts and
// ?select=i-j to highlight an edge.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/kgraph/pkg/scene"
)

// maxBodyBytes bounds request bodies. A 200×200 matrix of three-digit
// weights is well under this.
const maxBodyBytes = 1 << 20

// Server routes API requests.
type Server struct {
	logger  *log.Logger
	scene   scene.Options
	seed    uint64 // default layout seed; 0 means random per request
	origins []string
}

// Option configures a Server.
type Option func(*Server)

// WithSceneOptions sets the canvas used for scene and render requests.
func WithSceneOptions(opts scene.Options) Option {
	return func(s *Server) { s.scene = opts }
}

// WithSeed sets the layout seed used when a request does not pass one.
func WithSeed(seed uint64) Option {
	return func(s *Server) { s.seed = seed }
}

// WithAllowedOrigins enables CORS for browser clients served from origins.
// Without it no CORS headers are sent.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// New creates a Server logging to logger (log.Default() when nil).
func New(logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/derive", s.derive)
		r.Post("/scene", s.buildScene)
		r.Post("/render", s.render)
	})

	return r
}
