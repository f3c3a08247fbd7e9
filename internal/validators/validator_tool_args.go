package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/granola-notes-mcp/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldDays targets the look-back window of get_personal_notes.
	FieldDays = "days"

	// FieldLimit targets the result quota of get_personal_notes.
	FieldLimit = "limit"

	// FieldNoteID targets the note id of check_call_participation.
	FieldNoteID = "noteId"
)

// ToolArgsValidator implements [Validator] for the argument models of the
// exposed tools. Zero values of days and limit are valid and mean "use the
// configured default".
type ToolArgsValidator struct {
}

// NewToolArgsValidator constructs a new ToolArgsValidator and returns it as
// the Validator interface.
func NewToolArgsValidator() Validator {
	return &ToolArgsValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of [models.PersonalNotesRequest] and [models.ParticipationRequest]
// are accepted. Returns ErrUnsupportedType for anything else.
func (v *ToolArgsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PersonalNotesRequest:
		return v.validatePersonalNotesRequest(ctx, value, fields...)
	case *models.PersonalNotesRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePersonalNotesRequest(ctx, *value, fields...)
	case models.ParticipationRequest:
		return v.validateParticipationRequest(ctx, value, fields...)
	case *models.ParticipationRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateParticipationRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ToolArgsValidator) validatePersonalNotesRequest(ctx context.Context, request models.PersonalNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDays, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldDays:
			if request.Days < 0 {
				return ErrInvalidDays
			}
		case FieldLimit:
			if request.Limit < 0 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ToolArgsValidator) validateParticipationRequest(ctx context.Context, request models.ParticipationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if strings.TrimSpace(request.NoteID) == "" {
				return ErrEmptyNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
