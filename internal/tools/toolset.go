package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/service"
	"github.com/MKhiriev/granola-notes-mcp/internal/validators"
	"github.com/MKhiriev/granola-notes-mcp/models"
)

// Tool names as seen by clients.
const (
	ToolGetPersonalNotes       = "get_personal_notes"
	ToolCheckCallParticipation = "check_call_participation"
)

// Argument keys.
const (
	argDays   = "days"
	argLimit  = "limit"
	argNoteID = "noteId"
)

type Toolset struct {
	notesService service.NotesService
	validator    validators.Validator

	logger *logger.Logger
}

func NewToolset(notesService service.NotesService, validator validators.Validator, logger *logger.Logger) *Toolset {
	return &Toolset{
		notesService: notesService,
		validator:    validator,
		logger:       logger,
	}
}

// Call runs the tool called name with JSON-decoded args. The returned value
// is ready to be serialized.
func (t *Toolset) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	log := t.logger.With().Str("tool", name).Logger()

	var (
		result any
		err    error
	)
	switch name {
	case ToolGetPersonalNotes:
		result, err = t.callGetPersonalNotes(ctx, args)
	case ToolCheckCallParticipation:
		result, err = t.callCheckCallParticipation(ctx, args)
	default:
		log.Warn().Msg("unknown tool requested")
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, name)
	}

	if err != nil {
		log.Err(err).Msg("tool call failed")
		return nil, &ToolError{Tool: name, Err: err}
	}

	log.Debug().Msg("tool call succeeded")
	return result, nil
}

func (t *Toolset) callGetPersonalNotes(ctx context.Context, args map[string]any) (models.PersonalNotesResponse, error) {
	var (
		req models.PersonalNotesRequest
		err error
	)
	if req.Days, err = intArg(args, argDays); err != nil {
		return models.PersonalNotesResponse{}, err
	}
	if req.Limit, err = intArg(args, argLimit); err != nil {
		return models.PersonalNotesResponse{}, err
	}

	return t.GetPersonalNotes(ctx, req)
}

func (t *Toolset) callCheckCallParticipation(ctx context.Context, args map[string]any) (models.ParticipationReport, error) {
	noteID, err := stringArg(args, argNoteID)
	if err != nil {
		return models.ParticipationReport{}, err
	}

	return t.CheckCallParticipation(ctx, models.ParticipationRequest{NoteID: noteID})
}

// GetPersonalNotes runs get_personal_notes with already decoded arguments.
func (t *Toolset) GetPersonalNotes(ctx context.Context, req models.PersonalNotesRequest) (models.PersonalNotesResponse, error) {
	if err := t.validator.Validate(ctx, req); err != nil {
		return models.PersonalNotesResponse{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	notes, err := t.notesService.ListPersonalNotes(ctx, req.Days, req.Limit)
	if err != nil {
		return models.PersonalNotesResponse{}, err
	}

	return models.PersonalNotesResponse{
		Message:       fmt.Sprintf("Found %d personal notes from the past %d days", len(notes.Notes), notes.Days),
		Notes:         notes.Notes,
		FilteredCount: notes.FilteredOut,
		TotalFound:    notes.TotalExamined,
	}, nil
}

// CheckCallParticipation runs check_call_participation with already decoded
// arguments.
func (t *Toolset) CheckCallParticipation(ctx context.Context, req models.ParticipationRequest) (models.ParticipationReport, error) {
	if err := t.validator.Validate(ctx, req); err != nil {
		return models.ParticipationReport{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return t.notesService.CheckParticipation(ctx, strings.TrimSpace(req.NoteID))
}

// intArg reads an optional integral number. Missing and null read as 0.
func intArg(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParams, key)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParams, key)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidParams, key)
	}
}

// stringArg reads an optional string. Missing and null read as "".
func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidParams, key)
	}
	return s, nil
}
