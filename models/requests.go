package models

// PersonalNotesRequest carries the arguments of the get_personal_notes tool.
// Zero values mean "use the configured default".
type PersonalNotesRequest struct {
	Days  int `json:"days,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// ParticipationRequest carries the arguments of the check_call_participation
// tool.
type ParticipationRequest struct {
	NoteID string `json:"noteId"`
}

// PersonalNotesResponse is the wire shape returned by get_personal_notes.
type PersonalNotesResponse struct {
	Message       string       `json:"message"`
	Notes         []NoteOutput `json:"notes"`
	FilteredCount int          `json:"filtered_count"`
	TotalFound    int          `json:"total_found"`
}
