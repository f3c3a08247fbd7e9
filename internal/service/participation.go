package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/models"
)

// Names of the participation strategies, in evaluation order. They are
// reported as [models.ParticipationVerdict.Strategy].
const (
	StrategyParticipantsList = "participants_list"
	StrategyNoteOwnership    = "note_ownership"
	StrategyMeetingMetadata  = "meeting_metadata"
	StrategySharingStatus    = "sharing_status"
	StrategyNotePermissions  = "note_permissions"

	// StrategyDefault marks the safe default: no strategy found evidence.
	StrategyDefault = "default"
	// StrategyError marks a note that could not be evaluated.
	StrategyError = "error"
)

type outcome int

const (
	noOpinion outcome = iota
	included
	excluded
)

// evaluation is the input of every strategy: who is asking, about which
// note, and a lazily fetched meeting.
type evaluation struct {
	identity models.Identity
	note     models.NoteRecord
	meeting  func() (models.MeetingRecord, bool)
}

type participationStrategy struct {
	name   string
	decide func(e evaluation) outcome
}

// participationStrategies is the cascade. The first strategy that does not
// return noOpinion decides. Cheap note-local checks run before the meeting
// fetch; the sharing rule only applies when nothing before it matched.
var participationStrategies = []participationStrategy{
	{name: StrategyParticipantsList, decide: byParticipantsList},
	{name: StrategyNoteOwnership, decide: byNoteOwnership},
	{name: StrategyMeetingMetadata, decide: byMeetingMetadata},
	{name: StrategySharingStatus, decide: bySharingStatus},
	{name: StrategyNotePermissions, decide: byNotePermissions},
}

// CheckMethods lists the strategy names in evaluation order.
func CheckMethods() []string {
	methods := make([]string, 0, len(participationStrategies))
	for _, s := range participationStrategies {
		methods = append(methods, s.name)
	}
	return methods
}

func byParticipantsList(e evaluation) outcome {
	if e.identity.MatchesAny(e.note.Participants) {
		return included
	}
	return noOpinion
}

func byNoteOwnership(e evaluation) outcome {
	if isOwner(e.identity, e.note) {
		return included
	}
	return noOpinion
}

// byMeetingMetadata never excludes: a meeting without the caller is not proof
// that the caller has no claim on the note.
func byMeetingMetadata(e evaluation) outcome {
	if e.note.MeetingID == "" {
		return noOpinion
	}

	meeting, ok := e.meeting()
	if ok && e.identity.MatchesAny(meeting.Participants) {
		return included
	}
	return noOpinion
}

// bySharingStatus excludes notes that were shared with the caller by someone
// else.
func bySharingStatus(e evaluation) outcome {
	if e.identity.MatchesAny(e.note.SharedWith) && !isOwner(e.identity, e.note) {
		return excluded
	}
	return noOpinion
}

func byNotePermissions(e evaluation) outcome {
	p := e.note.Permissions
	if p == nil {
		return noOpinion
	}
	if e.identity.IsUser(p.Owner) || e.identity.IsUser(p.CreatedBy) {
		return included
	}
	return noOpinion
}

func isOwner(identity models.Identity, note models.NoteRecord) bool {
	return identity.IsUser(note.CreatedBy) || identity.IsUser(note.OwnerID)
}

// Resolver decides whether an identity participated in the meeting behind a
// note. It is stateless apart from its collaborators and safe for
// concurrent use.
type Resolver struct {
	strategies []participationStrategy
	meetings   MeetingFetcher

	logger *logger.Logger
}

// NewResolver builds a [Resolver] that loads meeting metadata through
// meetings, at most once per resolved note.
func NewResolver(meetings MeetingFetcher, logger *logger.Logger) *Resolver {
	return &Resolver{
		strategies: participationStrategies,
		meetings:   meetings,
		logger:     logger,
	}
}

// Resolve runs the strategy cascade for note. It never fails: a note that
// cannot be evaluated yields a negative verdict with [StrategyError].
func (r *Resolver) Resolve(ctx context.Context, identity models.Identity, note models.NoteRecord) models.ParticipationVerdict {
	verdict, err := r.resolve(ctx, identity, note)
	if err != nil {
		r.logger.Error().Err(err).Str("note_id", note.ID).Msg("error checking user participation")
		return models.ParticipationVerdict{IsParticipant: false, Strategy: StrategyError}
	}
	return verdict
}

// resolve is Resolve with the per-note failure made explicit, so that batch
// callers can count it.
func (r *Resolver) resolve(ctx context.Context, identity models.Identity, note models.NoteRecord) (verdict models.ParticipationVerdict, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &ResolutionError{NoteID: note.ID, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	e := evaluation{
		identity: identity,
		note:     note,
		meeting:  r.lazyMeeting(ctx, note.MeetingID),
	}

	for _, s := range r.strategies {
		switch s.decide(e) {
		case included:
			return models.ParticipationVerdict{IsParticipant: true, Strategy: s.name}, nil
		case excluded:
			return models.ParticipationVerdict{IsParticipant: false, Strategy: s.name}, nil
		}
	}

	r.logger.Warn().Str("note_id", note.ID).Msg("could not determine participation, excluding for safety")
	return models.ParticipationVerdict{IsParticipant: false, Strategy: StrategyDefault}, nil
}

// lazyMeeting returns a memoized loader. A failed fetch is logged and
// reported as "no meeting"; it is not retried.
func (r *Resolver) lazyMeeting(ctx context.Context, meetingID string) func() (models.MeetingRecord, bool) {
	var (
		fetched bool
		meeting models.MeetingRecord
		ok      bool
	)

	return func() (models.MeetingRecord, bool) {
		if fetched {
			return meeting, ok
		}
		fetched = true

		if meetingID == "" || r.meetings == nil {
			return meeting, false
		}

		m, err := r.meetings.GetMeeting(ctx, meetingID)
		if err != nil {
			r.logger.Warn().Err(err).Str("meeting_id", meetingID).Msg("could not fetch meeting details")
			return meeting, false
		}

		meeting, ok = m, true
		return meeting, ok
	}
}
