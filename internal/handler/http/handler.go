package http

import (
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/service"
	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	"github.com/MKhiriev/granola-notes-mcp/internal/utils"
)

type Handler struct {
	services *service.Services
	toolset  *tools.Toolset
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, toolset *tools.Toolset, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		toolset:  toolset,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
