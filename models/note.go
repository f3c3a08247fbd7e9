// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// DefaultNoteTitle is shown for notes that carry neither a title nor a
// meeting title.
const DefaultNoteTitle = "Untitled Meeting"

// DefaultMeetingType is reported for notes without a meeting type tag.
const DefaultMeetingType = "unknown"

// Person is a single entry of a participant, attendee or sharing list.
// The remote service fills any subset of the identifying fields.
type Person struct {
	// ID is the person's account identifier.
	ID string `json:"id,omitempty"`

	// UserID is an alternative account identifier used by some payloads.
	UserID string `json:"user_id,omitempty"`

	// Email is the person's e-mail address.
	Email string `json:"email,omitempty"`

	// Name is the display name. It is passed through to outputs and never
	// used for matching.
	Name string `json:"name,omitempty"`
}

// NotePermissions is the raw permission object attached to some notes.
type NotePermissions struct {
	Owner     string `json:"owner,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// NoteRecord is a normalized view of a remote note. It lives only for the
// request that fetched it.
type NoteRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	MeetingTitle string `json:"meeting_title,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	Date      string `json:"date,omitempty"`

	Content string `json:"content,omitempty"`
	Summary string `json:"summary,omitempty"`

	Participants []Person `json:"participants,omitempty"`
	Attendees    []Person `json:"attendees,omitempty"`
	SharedWith   []Person `json:"shared_with,omitempty"`

	CreatedBy string `json:"created_by,omitempty"`
	OwnerID   string `json:"owner_id,omitempty"`

	MeetingID   string `json:"meeting_id,omitempty"`
	MeetingType string `json:"meeting_type,omitempty"`
	MeetingURL  string `json:"meeting_url,omitempty"`

	// Duration is passed through untouched; the service reports it either
	// as a number of seconds or as a formatted string.
	Duration json.RawMessage `json:"duration,omitempty"`

	Permissions *NotePermissions `json:"permissions,omitempty"`
}

// DisplayTitle returns the note title, falling back to the meeting title and
// then to [DefaultNoteTitle].
func (n NoteRecord) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	if n.MeetingTitle != "" {
		return n.MeetingTitle
	}
	return DefaultNoteTitle
}

// DisplayDate returns created_at, or date when created_at is absent.
func (n NoteRecord) DisplayDate() string {
	if n.CreatedAt != "" {
		return n.CreatedAt
	}
	return n.Date
}

// DisplayContent returns content, or summary when content is absent.
func (n NoteRecord) DisplayContent() string {
	if n.Content != "" {
		return n.Content
	}
	return n.Summary
}

// People returns the participant list, falling back to attendees. The result
// is never nil so it serializes as an empty JSON array.
func (n NoteRecord) People() []Person {
	if len(n.Participants) > 0 {
		return n.Participants
	}
	if len(n.Attendees) > 0 {
		return n.Attendees
	}
	return []Person{}
}

// Sharing returns the sharing list, never nil.
func (n NoteRecord) Sharing() []Person {
	if n.SharedWith == nil {
		return []Person{}
	}
	return n.SharedWith
}

// MeetingRecord is a normalized view of remote meeting metadata.
type MeetingRecord struct {
	ID           string   `json:"id,omitempty"`
	Participants []Person `json:"participants,omitempty"`
}

// NotesQuery holds the query parameters of a note batch request.
type NotesQuery struct {
	// Limit is the page size requested from the remote service.
	Limit int

	// Since is an RFC 3339 timestamp; only notes created after it are returned.
	Since string

	// Sort is the remote sort key, e.g. "created_desc".
	Sort string
}
