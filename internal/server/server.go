// Package server exposes the render pipeline over HTTP.
//
// # Routes
//
//	POST /render   render a graph document (text, dot, svg, json)
//	POST /check    report cycles, placeholders and layout metrics
//	GET  /healthz  liveness probe
//	GET  /metrics  Prometheus metrics
//
// Request bodies use the same JSON shape as graph files. Errors are returned
// as JSON with a status derived from the error code.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dagerrors "github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes caps request bodies.
	DefaultMaxBodyBytes = 4 << 20

	shutdownTimeout = 10 * time.Second
	renderTimeout   = 30 * time.Second
)

// Config configures a [Server].
type Config struct {
	Addr         string
	Runner       *pipeline.Runner
	Limits       dagerrors.Limits
	MaxBodyBytes int64
	Gatherer     prometheus.Gatherer // nil disables /metrics
	Logger       *log.Logger
}

// Server is the HTTP render service.
type Server struct {
	cfg    Config
	logger *log.Logger
	router chi.Router
}

// New creates a server. Zero-valued config fields get defaults.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Limits == (dagerrors.Limits{}) {
		cfg.Limits = dagerrors.DefaultLimits
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}

	s := &Server{cfg: cfg, logger: cfg.Logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(renderTimeout))
		r.Post("/render", s.handleRender)
		r.Post("/check", s.handleCheck)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, dagerrors.New(dagerrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is [Server.ListenAndServe] on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
