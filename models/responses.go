package models

import "encoding/json"

// NoteOutput is the stable schema a retained note is reshaped into.
type NoteOutput struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Date         string          `json:"date"`
	Content      string          `json:"content"`
	Participants []Person        `json:"participants"`
	Duration     json.RawMessage `json:"duration,omitempty"`
	MeetingURL   string          `json:"meeting_url,omitempty"`
	SharedWith   []Person        `json:"shared_with"`
	IsPersonal   bool            `json:"is_personal"`
	MeetingType  string          `json:"meeting_type"`
}

// NewNoteOutput reshapes a note into [NoteOutput].
func NewNoteOutput(note NoteRecord) NoteOutput {
	meetingType := note.MeetingType
	if meetingType == "" {
		meetingType = DefaultMeetingType
	}

	return NoteOutput{
		ID:           note.ID,
		Title:        note.DisplayTitle(),
		Date:         note.DisplayDate(),
		Content:      note.DisplayContent(),
		Participants: note.People(),
		Duration:     note.Duration,
		MeetingURL:   note.MeetingURL,
		SharedWith:   note.Sharing(),
		IsPersonal:   true,
		MeetingType:  meetingType,
	}
}

// PersonalNotes is the result of filtering a note batch by participation.
//
// Invariant: len(Notes)+FilteredOut == TotalExamined and len(Notes) <= Limit.
type PersonalNotes struct {
	Notes         []NoteOutput
	TotalExamined int
	FilteredOut   int

	// Days and Limit are the effective window and quota after defaulting.
	Days  int
	Limit int
}

// ParticipationDetails explains how a single-note check was performed.
type ParticipationDetails struct {
	UserID       string   `json:"user_id"`
	UserEmail    string   `json:"user_email,omitempty"`
	CheckMethods []string `json:"check_methods"`
	DecidedBy    string   `json:"decided_by"`
}

// ParticipationReport is the answer to a single-note participation check,
// together with the raw fields that informed it.
type ParticipationReport struct {
	NoteID               string               `json:"note_id"`
	IsParticipant        bool                 `json:"is_participant"`
	NoteTitle            string               `json:"note_title"`
	CreatedBy            string               `json:"created_by,omitempty"`
	OwnerID              string               `json:"owner_id,omitempty"`
	Participants         []Person             `json:"participants"`
	SharedWith           []Person             `json:"shared_with"`
	MeetingType          string               `json:"meeting_type,omitempty"`
	ParticipationDetails ParticipationDetails `json:"participation_details"`
}
