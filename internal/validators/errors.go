package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDays  = errors.New("days must not be negative")
	ErrInvalidLimit = errors.New("limit must not be negative")
	ErrEmptyNoteID  = errors.New("noteId is required")
)
