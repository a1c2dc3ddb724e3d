// Package server defines the Server struct that composes the app's main
// dependencies, spins up the HTTP server and handles graceful shutdown.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/auth-validation/internal/config"
	"github.com/rs/zerolog"
)

// ErrNotInitialized is returned by Start when SetupHTTPServer was not called.
var ErrNotInitialized = errors.New("HTTP server not initialized")

// Server is the application container that holds shared resources. It is
// not the HTTP server itself; handlers and middleware reach config and
// logger through it.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	httpServer *http.Server
}

// New constructs a Server. It does not start listening; see
// SetupHTTPServer and Start.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config: cfg,
		Logger: logger,
	}
}

// SetupHTTPServer configures the internal net/http server around handler.
// Config timeouts are interpreted as seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops. A clean Shutdown
// makes it return nil.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return ErrNotInitialized
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
