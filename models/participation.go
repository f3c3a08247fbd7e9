package models

import "strings"

// Identity is the caller on whose behalf notes are filtered.
type Identity struct {
	// UserID is the caller's account identifier. Required.
	UserID string

	// Email is an optional secondary match key.
	Email string
}

// Matches reports whether p refers to the identity by id, user_id or email.
// Empty values never match.
func (i Identity) Matches(p Person) bool {
	if i.UserID != "" && (p.ID == i.UserID || p.UserID == i.UserID) {
		return true
	}
	return i.Email != "" && p.Email != "" && strings.EqualFold(p.Email, i.Email)
}

// MatchesAny reports whether any entry of people refers to the identity.
func (i Identity) MatchesAny(people []Person) bool {
	for _, p := range people {
		if i.Matches(p) {
			return true
		}
	}
	return false
}

// IsUser reports whether id is the identity's user id.
func (i Identity) IsUser(id string) bool {
	return i.UserID != "" && id == i.UserID
}

// ParticipationVerdict is the outcome of resolving one note.
type ParticipationVerdict struct {
	IsParticipant bool `json:"is_participant"`

	// Strategy names the rule that decided the verdict.
	Strategy string `json:"strategy"`
}
