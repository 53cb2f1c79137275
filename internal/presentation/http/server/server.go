// Package server wraps the HTTP server lifecycle around the gin engine
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/container"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/presentation/http/routes"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
)

// Server owns the http.Server serving the site
type Server struct {
	httpServer *http.Server
	container  *container.Container
}

// New creates the server on the given port over the container
func New(port string, ctn *container.Container) *Server {
	router := routes.SetupRoutes(ctn)

	return &Server{
		container: ctn,
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  config.ServerReadTimeout,
			WriteTimeout: config.ServerWriteTimeout,
			IdleTimeout:  config.ServerIdleTimeout,
		},
	}
}

// Start begins serving requests and blocks until the listener closes
func (s *Server) Start() error {
	s.container.Logger.System().Info("HTTP server listening", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.container.Logger.Shutdown().Info("Stopping HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
