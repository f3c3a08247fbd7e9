package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/granola-notes-mcp/internal/adapter"
	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/handler"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/server"
	"github.com/MKhiriev/granola-notes-mcp/internal/service"
	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	"github.com/MKhiriev/granola-notes-mcp/internal/tracing"
	"github.com/MKhiriev/granola-notes-mcp/internal/validators"
	"github.com/MKhiriev/granola-notes-mcp/models"
)

var _ Runner = (*App)(nil)

// App owns the dependency graph of one process.
type App struct {
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo

	services *service.Services
	toolset  *tools.Toolset

	shutdownTracing tracing.ShutdownFunc
	logger          *logger.Logger
}

// New builds the application from cfg. The note service adapter is created
// here unless noteAdapter is non-nil.
func New(ctx context.Context, cfg *config.StructuredConfig, noteAdapter adapter.NoteServiceAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	shutdownTracing, err := tracing.InitTracer(ctx, cfg.Tracing, logger)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if noteAdapter == nil {
		noteAdapter, err = adapter.NewHTTPNoteServiceAdapter(cfg.Granola, logger)
		if err != nil {
			_ = shutdownTracing(ctx)
			return nil, fmt.Errorf("create note service adapter: %w", err)
		}
	}

	services, err := service.NewServices(noteAdapter, *cfg, buildInfo, logger)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		cfg:             cfg,
		buildInfo:       buildInfo,
		services:        services,
		toolset:         tools.NewToolset(services.NotesService, validators.NewToolArgsValidator(), logger),
		shutdownTracing: shutdownTracing,
		logger:          logger,
	}, nil
}

// Toolset returns the tool set shared by every transport and the CLI.
func (a *App) Toolset() *tools.Toolset {
	return a.toolset
}

// Run serves the configured transport until ctx is done or a termination
// signal arrives.
func (a *App) Run(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.toolset, a.cfg.Server, a.buildInfo.BuildVersion(), a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	a.logger.Info().
		Str("transport", a.cfg.Server.Transport).
		Str("version", a.buildInfo.BuildVersion()).
		Msg("granola MCP server starting")

	return srv.RunServer(ctx)
}

// Close flushes pending spans.
func (a *App) Close(ctx context.Context) error {
	if err := a.shutdownTracing(ctx); err != nil {
		return fmt.Errorf("shutdown tracing: %w", err)
	}
	return nil
}
