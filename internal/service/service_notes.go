package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/granola-notes-mcp/internal/adapter"
	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/MKhiriev/granola-notes-mcp/internal/service"

	sortNewestFirst = "created_desc"

	// isoMillis matches the timestamps the note service emits.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

type notesService struct {
	noteAdapter adapter.NoteServiceAdapter
	resolver    *Resolver
	identity    models.Identity
	cfg         config.Notes

	now    func() time.Time
	tracer trace.Tracer
	logger *logger.Logger
}

// NewNotesService builds the [NotesService] for the identity described by
// granolaCfg. Meeting metadata is loaded through the same adapter.
func NewNotesService(noteAdapter adapter.NoteServiceAdapter, granolaCfg config.Granola, notesCfg config.Notes, logger *logger.Logger) NotesService {
	return &notesService{
		noteAdapter: noteAdapter,
		resolver:    NewResolver(noteAdapter, logger),
		identity:    models.Identity{UserID: granolaCfg.UserID, Email: granolaCfg.UserEmail},
		cfg:         notesCfg,
		now:         time.Now,
		tracer:      otel.Tracer(tracerName),
		logger:      logger,
	}
}

// ListPersonalNotes implements [NotesService].
//
// It requests limit × overfetch factor notes created since now-days, newest
// first, and walks them in order, resolving participation one note at a time.
// Walking stops as soon as limit notes are retained, so TotalExamined counts
// only the notes actually looked at. A note that cannot be evaluated is
// logged and counted as filtered out. Only a failure of the batch request
// itself is returned.
func (s *notesService) ListPersonalNotes(ctx context.Context, days, limit int) (models.PersonalNotes, error) {
	if days == 0 {
		days = s.cfg.DefaultDays
	}
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	ctx, span := s.tracer.Start(ctx, "NotesService.ListPersonalNotes", trace.WithAttributes(
		attribute.Int("notes.days", days),
		attribute.Int("notes.limit", limit),
	))
	defer span.End()

	result := models.PersonalNotes{Notes: []models.NoteOutput{}, Days: days, Limit: limit}
	if limit < 0 {
		return result, nil
	}

	cutoff := s.now().AddDate(0, 0, -days).UTC()
	body, err := s.noteAdapter.ListNotes(ctx, models.NotesQuery{
		Limit: limit * s.cfg.OverfetchFactor,
		Since: cutoff.Format(isoMillis),
		Sort:  sortNewestFirst,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list notes")
		return models.PersonalNotes{}, fmt.Errorf("%w: %w", ErrListNotes, err)
	}

	candidates, err := decodeNoteBatch(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode notes")
		return models.PersonalNotes{}, fmt.Errorf("%w: %w", ErrListNotes, err)
	}

	for _, raw := range candidates {
		if err = ctx.Err(); err != nil {
			return models.PersonalNotes{}, fmt.Errorf("%w: %w", ErrListNotes, err)
		}

		result.TotalExamined++

		note, verdict, err := s.evaluate(ctx, raw)
		if err != nil {
			s.logger.Error().Err(err).Msg("error checking participation, note skipped")
			continue
		}
		if !verdict.IsParticipant {
			continue
		}

		result.Notes = append(result.Notes, models.NewNoteOutput(note))
		if len(result.Notes) >= limit {
			break
		}
	}

	result.FilteredOut = result.TotalExamined - len(result.Notes)

	span.SetAttributes(
		attribute.Int("notes.candidates", len(candidates)),
		attribute.Int("notes.examined", result.TotalExamined),
		attribute.Int("notes.retained", len(result.Notes)),
	)
	s.logger.Debug().
		Int("candidates", len(candidates)).
		Int("examined", result.TotalExamined).
		Int("retained", len(result.Notes)).
		Msg("personal notes filtered")

	return result, nil
}

// evaluate decodes one candidate and resolves it. Any failure is returned as
// a [*ResolutionError].
func (s *notesService) evaluate(ctx context.Context, raw json.RawMessage) (models.NoteRecord, models.ParticipationVerdict, error) {
	var note models.NoteRecord
	if err := json.Unmarshal(raw, &note); err != nil {
		return note, models.ParticipationVerdict{}, &ResolutionError{NoteID: peekNoteID(raw), Err: err}
	}

	verdict, err := s.resolver.resolve(ctx, s.identity, note)
	return note, verdict, err
}

// CheckParticipation implements [NotesService]. Unlike the batch listing, a
// failure to fetch the note is returned to the caller.
func (s *notesService) CheckParticipation(ctx context.Context, noteID string) (models.ParticipationReport, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return models.ParticipationReport{}, fmt.Errorf("%w: %w", ErrCheckParticipation, ErrEmptyNoteID)
	}

	ctx, span := s.tracer.Start(ctx, "NotesService.CheckParticipation", trace.WithAttributes(
		attribute.String("note.id", noteID),
	))
	defer span.End()

	note, err := s.noteAdapter.GetNote(ctx, noteID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get note")
		return models.ParticipationReport{}, fmt.Errorf("%w: %w", ErrCheckParticipation, err)
	}

	verdict := s.resolver.Resolve(ctx, s.identity, note)
	span.SetAttributes(
		attribute.Bool("note.is_participant", verdict.IsParticipant),
		attribute.String("note.strategy", verdict.Strategy),
	)

	participants := note.Participants
	if participants == nil {
		participants = []models.Person{}
	}

	return models.ParticipationReport{
		NoteID:        noteID,
		IsParticipant: verdict.IsParticipant,
		NoteTitle:     note.DisplayTitle(),
		CreatedBy:     note.CreatedBy,
		OwnerID:       note.OwnerID,
		Participants:  participants,
		SharedWith:    note.Sharing(),
		MeetingType:   note.MeetingType,
		ParticipationDetails: models.ParticipationDetails{
			UserID:       s.identity.UserID,
			UserEmail:    s.identity.Email,
			CheckMethods: CheckMethods(),
			DecidedBy:    verdict.Strategy,
		},
	}, nil
}

// decodeNoteBatch accepts either {"notes": [...]} or a bare array and returns
// the undecoded records in order. An empty or null body is an empty batch.
func decodeNoteBatch(body json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var notes []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &notes); err != nil {
			return nil, malformedBatch(err)
		}
	case '{':
		var wrapper struct {
			Notes *[]json.RawMessage `json:"notes"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, malformedBatch(err)
		}
		if wrapper.Notes == nil {
			return nil, malformedBatch(fmt.Errorf("object without a notes collection"))
		}
		notes = *wrapper.Notes
	default:
		return nil, malformedBatch(fmt.Errorf("unexpected JSON value"))
	}

	return notes, nil
}

func malformedBatch(err error) error {
	return &adapter.RemoteError{
		Op:     http.MethodGet + " /notes",
		Status: http.StatusOK,
		Err:    fmt.Errorf("%w: %w", adapter.ErrMalformedBody, err),
	}
}

// peekNoteID extracts a string id from a record that failed to decode, for
// logging only.
func peekNoteID(raw json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || head.ID == nil {
		return ""
	}
	return fmt.Sprint(head.ID)
}
