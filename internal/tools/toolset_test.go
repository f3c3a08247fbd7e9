package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/mock"
	"github.com/MKhiriev/granola-notes-mcp/internal/service"
	"github.com/MKhiriev/granola-notes-mcp/internal/validators"
	"github.com/MKhiriev/granola-notes-mcp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestToolset(t *testing.T) (*Toolset, *mock.MockNotesService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesService(ctrl)
	return NewToolset(notes, validators.NewToolArgsValidator(), logger.Nop()), notes
}

// ── get_personal_notes ───────────────────────────────────────────────────────

func TestCall_GetPersonalNotes(t *testing.T) {
	ts, notes := newTestToolset(t)
	ctx := context.Background()

	notes.EXPECT().ListPersonalNotes(ctx, 3, 10).Return(models.PersonalNotes{
		Notes:         []models.NoteOutput{{ID: "n1", IsPersonal: true}},
		TotalExamined: 4,
		FilteredOut:   3,
		Days:          3,
		Limit:         10,
	}, nil)

	got, err := ts.Call(ctx, ToolGetPersonalNotes, map[string]any{"days": float64(3), "limit": float64(10)})
	require.NoError(t, err)

	resp, ok := got.(models.PersonalNotesResponse)
	require.True(t, ok)
	assert.Equal(t, "Found 1 personal notes from the past 3 days", resp.Message)
	assert.Equal(t, 3, resp.FilteredCount)
	assert.Equal(t, 4, resp.TotalFound)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "n1", resp.Notes[0].ID)
}

func TestCall_GetPersonalNotes_DefaultsReported(t *testing.T) {
	ts, notes := newTestToolset(t)

	// missing arguments are passed as zero and the effective days come back
	notes.EXPECT().ListPersonalNotes(gomock.Any(), 0, 0).Return(models.PersonalNotes{
		Notes: []models.NoteOutput{},
		Days:  7,
		Limit: 50,
	}, nil)

	got, err := ts.Call(context.Background(), ToolGetPersonalNotes, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"message": "Found 0 personal notes from the past 7 days",
		"notes": [],
		"filtered_count": 0,
		"total_found": 0
	}`, string(raw))
}

func TestCall_GetPersonalNotes_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "string days", args: map[string]any{"days": "seven"}},
		{name: "fractional limit", args: map[string]any{"limit": 2.5}},
		{name: "negative days", args: map[string]any{"days": float64(-1)}},
		{name: "negative limit", args: map[string]any{"limit": float64(-10)}},
		{name: "bool limit", args: map[string]any{"limit": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, notes := newTestToolset(t)
			notes.EXPECT().ListPersonalNotes(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := ts.Call(context.Background(), ToolGetPersonalNotes, tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestCall_GetPersonalNotes_ServiceFailure(t *testing.T) {
	ts, notes := newTestToolset(t)

	cause := errors.New("failed to retrieve personal notes: GET /notes: http 500: remote server error")
	notes.EXPECT().ListPersonalNotes(gomock.Any(), 7, 50).Return(models.PersonalNotes{}, cause)

	_, err := ts.Call(context.Background(), ToolGetPersonalNotes, map[string]any{"days": 7, "limit": json.Number("50")})
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, ToolGetPersonalNotes, toolErr.Tool)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidParams)
	assert.Equal(t, "error executing tool get_personal_notes: "+cause.Error(), err.Error())
}

// ── check_call_participation ─────────────────────────────────────────────────

func TestCall_CheckCallParticipation(t *testing.T) {
	ts, notes := newTestToolset(t)

	report := models.ParticipationReport{NoteID: "n3", IsParticipant: true}
	notes.EXPECT().CheckParticipation(gomock.Any(), "n3").Return(report, nil)

	got, err := ts.Call(context.Background(), ToolCheckCallParticipation, map[string]any{"noteId": " n3 "})
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestCall_CheckCallParticipation_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "missing", args: map[string]any{}},
		{name: "blank", args: map[string]any{"noteId": "  "}},
		{name: "number", args: map[string]any{"noteId": float64(12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, notes := newTestToolset(t)
			notes.EXPECT().CheckParticipation(gomock.Any(), gomock.Any()).Times(0)

			_, err := ts.Call(context.Background(), ToolCheckCallParticipation, tt.args)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestCall_CheckCallParticipation_NotFound(t *testing.T) {
	ts, notes := newTestToolset(t)

	notes.EXPECT().CheckParticipation(gomock.Any(), "gone").Return(models.ParticipationReport{}, service.ErrCheckParticipation)

	_, err := ts.Call(context.Background(), ToolCheckCallParticipation, map[string]any{"noteId": "gone"})
	assert.ErrorIs(t, err, service.ErrCheckParticipation)
	assert.Contains(t, err.Error(), "error executing tool check_call_participation")
}

// ── unknown tool ─────────────────────────────────────────────────────────────

func TestCall_UnknownTool(t *testing.T) {
	ts, _ := newTestToolset(t)

	_, err := ts.Call(context.Background(), "delete_everything", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMethodNotFound)

	var toolErr *ToolError
	assert.False(t, errors.As(err, &toolErr))
}

// ── argument helpers ─────────────────────────────────────────────────────────

func TestIntArg(t *testing.T) {
	got, err := intArg(map[string]any{"n": nil}, "n")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = intArg(map[string]any{"n": float64(14)}, "n")
	require.NoError(t, err)
	assert.Equal(t, 14, got)

	got, err = intArg(map[string]any{"n": int64(3)}, "n")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = intArg(map[string]any{"n": json.Number("1.5")}, "n")
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = intArg(map[string]any{"n": float64(1 << 40)}, "n")
	assert.ErrorIs(t, err, ErrInvalidParams)
}
