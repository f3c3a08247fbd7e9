package handler

import (
	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/handler/http"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/service"
	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
)

// Handlers holds the transport handler selected by configuration. Exactly
// one field is set.
type Handlers struct {
	HTTP *http.Handler
	MCP  *tools.MCPServer
}

func NewHandlers(services *service.Services, toolset *tools.Toolset, cfg config.Server, version string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("transport", cfg.Transport).Msg("creating new handlers...")

	handlers := &Handlers{}

	switch cfg.Transport {
	case config.TransportHTTP:
		handlers.HTTP = http.NewHandler(services, toolset, logger)
	case config.TransportStdio:
		handlers.MCP = tools.NewMCPServer(toolset, version)
	}

	if handlers.HTTP == nil && handlers.MCP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
