// Package api provides the HTTP REST API server for tickerpulse.
//
// It exposes news sentiment snapshots, a batch endpoint, natural-language
// requests through the news agent, rendered reports, Prometheus metrics
// and a WebSocket feed of completed snapshots.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seenimoa/tickerpulse/internal/agent"
	"github.com/seenimoa/tickerpulse/internal/config"
	"github.com/seenimoa/tickerpulse/internal/infra"
	"github.com/seenimoa/tickerpulse/internal/llm"
	"github.com/seenimoa/tickerpulse/internal/pipeline"
	"github.com/seenimoa/tickerpulse/pkg/models"
)

// Version is reported by the health endpoint. The CLI overrides it.
var Version = "dev"

// SentimentService answers sentiment queries. *pipeline.Service satisfies it.
type SentimentService interface {
	FetchSentiment(ctx context.Context, query string, limit int, useBody bool) (*models.Snapshot, error)
}

// NewsRunner runs the natural-language news agent. *agent.NewsAgent
// satisfies it.
type NewsRunner interface {
	Run(ctx context.Context, st agent.NewsState) agent.NewsState
}

// Deps are the collaborators a Server needs. Registry and Logger are
// optional.
type Deps struct {
	Service  SentimentService
	Agent    NewsRunner
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	svc      SentimentService
	agent    NewsRunner
	wsHub    *WSHub
	registry *prometheus.Registry
	metrics  *httpMetrics
	logger   *slog.Logger
}

// NewServer creates a fully wired API server from configuration: the
// sentiment pipeline, the LLM-backed news agent and the metrics registry.
// A missing or disabled LLM leaves the agent on its pattern fallbacks.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	logger = infra.OrDefault(logger)
	reg := prometheus.NewRegistry()

	svc, err := pipeline.NewFromConfig(cfg, reg, logger)
	if err != nil {
		return nil, fmt.Errorf("pipeline setup failed: %w", err)
	}

	provider, err := llm.NewFromConfig(cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		provider = nil
	case err != nil:
		logger.Warn("LLM unavailable, prompt parsing uses pattern fallbacks", "err", err)
		provider = nil
	}

	extractor := agent.NewExtractor(provider, &llm.ChatOptions{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, logger)
	newsAgent := agent.NewNewsAgent(extractor, svc, cfg.Sentiment.BodyEnabled, logger)

	return New(cfg, Deps{Service: svc, Agent: newsAgent, Registry: reg, Logger: logger})
}

// New creates a server around existing collaborators.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Service == nil {
		return nil, errors.New("api: sentiment service is required")
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	logger := infra.OrDefault(deps.Logger)

	srv := &Server{
		cfg:      cfg,
		svc:      deps.Service,
		agent:    deps.Agent,
		wsHub:    NewWSHub(logger),
		registry: reg,
		metrics:  newHTTPMetrics(reg),
		logger:   logger,
	}
	srv.router = srv.buildRouter()
	return srv, nil
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *WSHub {
	return s.wsHub
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled
// or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.wsHub.Run(hubCtx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.instrument)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)
	r.Get("/healthz", s.handleHealth)

	// Prometheus exposition
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health (also available at /health)
		r.Get("/health", s.handleHealth)

		// Sentiment
		r.Get("/sentiment", s.handleSentiment)
		r.Post("/sentiment/batch", s.handleSentimentBatch)
		r.Get("/sentiment/report", s.handleSentimentReport)

		// Natural-language requests
		r.Post("/ask", s.handleAsk)

		// Configuration
		r.Get("/config", s.handleGetConfig)
		r.Get("/config/keys", s.handleGetConfigKeys)

		// WebSocket
		r.Get("/ws", s.handleWebSocket)
	})

	return r
}

// ============================================================
// Response helpers
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write JSON response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
