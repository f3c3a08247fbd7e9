package service

import (
	"errors"
	"fmt"
)

var (
	ErrListNotes             = errors.New("failed to retrieve personal notes")
	ErrCheckParticipation    = errors.New("failed to check call participation")
	ErrEmptyNoteID           = errors.New("note id is empty")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ResolutionError reports that a single note could not be evaluated, e.g.
// because its record is malformed. It never aborts a batch: the note is
// counted as excluded.
type ResolutionError struct {
	NoteID string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.NoteID == "" {
		return fmt.Sprintf("resolve participation: %v", e.Err)
	}
	return fmt.Sprintf("resolve participation for note %s: %v", e.NoteID, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
