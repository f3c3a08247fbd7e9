package service

import (
	"context"

	"github.com/MKhiriev/granola-notes-mcp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NotesService answers the two questions the tools expose: which recent
// notes belong to the caller, and whether the caller took part in a given
// meeting.
type NotesService interface {
	// ListPersonalNotes fetches notes created in the last days days and keeps
	// at most limit of them in which the caller participated. Zero values
	// select the configured defaults.
	ListPersonalNotes(ctx context.Context, days, limit int) (models.PersonalNotes, error)

	// CheckParticipation fetches one note and reports whether the caller
	// participated, with the evidence used.
	CheckParticipation(ctx context.Context, noteID string) (models.ParticipationReport, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MeetingFetcher loads meeting metadata for the participation resolver.
// [adapter.NoteServiceAdapter] satisfies it.
type MeetingFetcher interface {
	GetMeeting(ctx context.Context, meetingID string) (models.MeetingRecord, error)
}

// MeetingFetcherFunc adapts a function to [MeetingFetcher].
type MeetingFetcherFunc func(ctx context.Context, meetingID string) (models.MeetingRecord, error)

// GetMeeting calls f.
func (f MeetingFetcherFunc) GetMeeting(ctx context.Context, meetingID string) (models.MeetingRecord, error) {
	return f(ctx, meetingID)
}
