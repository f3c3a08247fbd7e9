package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/handler"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
)

type server struct {
	transport       transport
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	switch {
	case handlers == nil:
	case handlers.HTTP != nil:
		s.transport = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	case handlers.MCP != nil:
		s.transport = newStdioServer(handlers.MCP, os.Stdin, os.Stdout, logger)
	}

	if s.transport == nil {
		return nil, errNoTransport
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	runErr := make(chan error, 1)
	go func() {
		runErr <- s.transport.run(ctx)
	}()

	select {
	case err := <-runErr:
		if err != nil {
			return fmt.Errorf("error running server: %w", err)
		}
		s.logger.Info().Msg("server stopped")
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.transport.shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := <-runErr; err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
