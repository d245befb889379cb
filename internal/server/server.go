// Package server hosts a FootBot backend: the /chat, /health, / and /status
// endpoints consumed by the client package.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ppiankov/footbot/internal/cache"
	"github.com/ppiankov/footbot/internal/knowledge"
	"github.com/ppiankov/footbot/internal/llm"
	"github.com/ppiankov/footbot/internal/logger"
	"github.com/ppiankov/footbot/internal/resolver"
)

// Version is reported by GET /
const Version = "1.0.0"

// Config holds the listener settings
type Config struct {
	Addr        string
	CORSOrigins []string
	ReadTimeout time.Duration
}

// Server answers chat questions with quick answers, the answer cache, an
// optional LLM and finally the keyword resolver.
type Server struct {
	cfg       Config
	knowledge *knowledge.Base
	resolver  *resolver.Resolver
	provider  llm.Provider
	answers   *cache.AnswerCache
	dataset   string
	editions  int
	metrics   *Metrics
	logger    *zap.Logger
	started   time.Time
}

// Option configures a Server
type Option func(*Server)

// WithProvider sets the LLM. Without one, the keyword resolver answers.
func WithProvider(p llm.Provider) Option {
	return func(s *Server) { s.provider = p }
}

// WithAnswerCache enables caching of LLM answers
func WithAnswerCache(c *cache.AnswerCache) Option {
	return func(s *Server) { s.answers = c }
}

// WithDataset sets the reference data sent with every LLM prompt
func WithDataset(editions []knowledge.Edition) Option {
	return func(s *Server) {
		s.dataset = knowledge.DatasetPrompt(editions)
		s.editions = len(editions)
	}
}

// WithMetrics exposes Prometheus metrics on /metrics
func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the server logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = logger.OrNop(l) }
}

// New creates a server. base must be valid.
func New(cfg Config, base *knowledge.Base, res *resolver.Resolver, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		knowledge: base,
		resolver:  res,
		logger:    zap.NewNop(),
		started:   time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the HTTP router
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors(s.cfg.CORSOrigins))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Post("/chat", s.handleChat)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr), zap.String("provider", s.providerName()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) providerName() string {
	if s.provider == nil {
		return "keyword"
	}
	return s.provider.Name()
}
