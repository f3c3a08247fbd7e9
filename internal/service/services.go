package service

import (
	"github.com/MKhiriev/granola-notes-mcp/internal/adapter"
	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/models"
)

type Services struct {
	NotesService   NotesService
	AppInfoService AppInfoService
}

func NewServices(noteAdapter adapter.NoteServiceAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		NotesService:   NewNotesService(noteAdapter, cfg.Granola, cfg.Notes, logger),
		AppInfoService: appInfoService,
	}, nil
}
