package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clipstruct/internal/config"
	"clipstruct/internal/pipeline"
)

// Server is the HTTP API for structure analysis.
type Server struct {
	router   chi.Router
	analyzer *pipeline.Analyzer
	log      *slog.Logger
	cfg      config.ServerSettings
}

// NewServer creates and configures the HTTP server.
func NewServer(analyzer *pipeline.Analyzer, log *slog.Logger, cfg config.ServerSettings) *Server {
	s := &Server{
		analyzer: analyzer,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(s.cfg.RateLimitPerMin, s.log))
		r.Use(BodyLimit(s.cfg.MaxBodyBytes))

		r.Get("/types", s.handleTypes)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/segments/override", s.handleOverride)
		r.Post("/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
