package handler

import (
	"testing"

	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/service"
	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	"github.com/MKhiriev/granola-notes-mcp/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestToolset returns a toolset without a notes service. Construction
// never calls into it.
func newTestToolset() *tools.Toolset {
	return tools.NewToolset(nil, validators.NewToolArgsValidator(), logger.Nop())
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{Transport: config.TransportHTTP, HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, newTestToolset(), cfg, "1.0.0", logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.Nil(t, h.MCP, "expected MCP server to be nil")
}

func TestNewHandlers_Stdio(t *testing.T) {
	cfg := config.Server{Transport: config.TransportStdio}

	h, err := NewHandlers(&service.Services{}, newTestToolset(), cfg, "1.0.0", logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.MCP, "expected MCP server to be initialised")
	assert.Nil(t, h.HTTP, "expected HTTP handler to be nil")
}

func TestNewHandlers_UnknownTransport(t *testing.T) {
	cfg := config.Server{Transport: "grpc"}

	h, err := NewHandlers(&service.Services{}, newTestToolset(), cfg, "1.0.0", logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
