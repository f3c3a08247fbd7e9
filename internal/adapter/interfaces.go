// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the Granola note
// service REST API.
//
// The primary abstraction is [NoteServiceAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPNoteServiceAdapter]) that performs exactly one round trip per call,
// never retries, and reports every failure as a [*RemoteError] whose cause is
// one of the sentinel errors in errors.go, so that callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/granola-notes-mcp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_service_adapter_mock.go -package=mock

// NoteServiceAdapter defines read access to the remote note service.
// Implementations attach the bearer token to every request and never
// interpret failures beyond classifying them.
type NoteServiceAdapter interface {
	// Fetch GETs path (relative to the base URL) with the given query
	// parameters and returns the raw JSON body of a 2xx response.
	Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error)

	// ListNotes fetches a batch of notes. The body is returned undecoded:
	// the service answers either with {"notes": [...]} or with a bare array.
	ListNotes(ctx context.Context, query models.NotesQuery) (json.RawMessage, error)

	// GetNote fetches and decodes a single note.
	GetNote(ctx context.Context, noteID string) (models.NoteRecord, error)

	// GetMeeting fetches and decodes the metadata of a meeting.
	GetMeeting(ctx context.Context, meetingID string) (models.MeetingRecord, error)
}
