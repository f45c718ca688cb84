// Package server exposes the task store over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/josephgoksu/todo/store"
)

// Config holds the listen address and CORS settings.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Logger         *slog.Logger
}

type Server struct {
	store   store.TaskStore
	origins map[string]struct{}
	logger  *slog.Logger
	server  *http.Server
}

// New builds a server over ts. Calls into ts are serialized, so one store
// can back many concurrent requests.
func New(ts store.TaskStore, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o != "" {
			origins[o] = struct{}{}
		}
	}

	s := &Server{
		store:   store.Synchronized(ts),
		origins: origins,
		logger:  logger,
	}
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.requestLogger(s.corsMiddleware(s.registerRoutes()))
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		s.logger.Info("API server listening", "addr", s.server.Addr, "store", s.store.Location())
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
