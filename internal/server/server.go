// Package server exposes one aggregation engine over HTTP.
//
// The engine is sequential, so every request that touches it holds a single
// mutex for its duration. Walks run inside the request and honor request
// cancellation between walks.
//
//	POST /walks?n=100         run n walks (default: the configured batch)
//	POST /walks?grow=1        run batches until the density threshold
//	POST /reset?seed=7        start a new run
//	GET  /density             density and threshold state
//	GET  /grid                occupied sites of the occupancy grid
//	GET  /snapshot.{format}   render the current cluster (txt, svg, png, json, dot, pdf)
//	GET  /health
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/pipeline"
)

// Server owns an engine and the options it was built from.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger

	mu     sync.Mutex
	opts   pipeline.Options
	engine *aggregate.Engine
	runID  string
}

// New builds the first engine from opts. A zero seed is resolved randomly.
func New(opts pipeline.Options, runner *pipeline.Runner, logger *log.Logger) (*Server, error) {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = runner.Logger
	}
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	s := &Server{runner: runner, logger: logger, opts: opts}
	if err := s.reset(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// reset replaces the engine. Callers hold mu, except New.
func (s *Server) reset(seed uint64) error {
	opts := s.opts
	opts.Seed = pipeline.ResolveSeed(seed)
	e, err := pipeline.NewEngine(opts)
	if err != nil {
		return err
	}
	s.engine, s.opts.Seed, s.runID = e, opts.Seed, uuid.NewString()
	s.logger.Info("new run", "run", s.runID, "radius", opts.Radius, "seed", opts.Seed, "ring", len(e.Ring()))
	return nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(versionHeader)

	r.Get("/health", s.health)
	r.Post("/walks", s.walks)
	r.Post("/reset", s.resetRun)
	r.Get("/density", s.density)
	r.Get("/grid", s.grid)
	r.Get("/snapshot.{format}", s.snapshot)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
