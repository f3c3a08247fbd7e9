package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/granola-notes-mcp/internal/adapter"
	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/mock"
	"github.com/MKhiriev/granola-notes-mcp/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testBuildInfo = models.NewAppBuildInfo("1.2.3", "2026-10-17", "abc123")

// clearEnv isolates the config from the environment of the test process.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG", "GRANOLA_API_KEY", "GRANOLA_USER_ID", "GRANOLA_USER_EMAIL",
		"GRANOLA_API_URL", "SERVER_TRANSPORT", "OTEL_ENABLED", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, noteAdapter adapter.NoteServiceAdapter, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)

	root := newRootCmd(&cli{buildInfo: testBuildInfo, noteAdapter: noteAdapter})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

var identityArgs = []string{"--api-key", "key", "--user-id", "u1", "--user-email", "me@example.com", "--log-level", "error"}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build date: 2026-10-17")
	assert.Contains(t, out, "Build commit: abc123")
}

func TestNotes_RefusesWithoutAPIKey(t *testing.T) {
	_, err := execute(t, nil, "notes", "--user-id", "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingAPIKey))
}

func TestServe_RefusesWithoutAPIKey(t *testing.T) {
	_, err := execute(t, nil, "--user-id", "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingAPIKey))
}

func TestNotes_PrintsPersonalNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockNoteServiceAdapter(ctrl)

	mockAdapter.EXPECT().ListNotes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.NotesQuery) (json.RawMessage, error) {
			assert.Equal(t, 10, q.Limit)
			assert.Equal(t, "created_desc", q.Sort)
			return json.RawMessage(`[{"id":"n1","title":"Standup","participants":[{"id":"u1"}]},{"id":"n2","created_by":"other"}]`), nil
		})

	args := append([]string{"notes", "--days", "3", "--limit", "5"}, identityArgs...)
	out, err := execute(t, mockAdapter, args...)
	require.NoError(t, err)

	var got models.PersonalNotesResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Found 1 personal notes from the past 3 days", got.Message)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "n1", got.Notes[0].ID)
	assert.Equal(t, 1, got.FilteredCount)
	assert.Equal(t, 2, got.TotalFound)
}

func TestNotes_DefaultsFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockNoteServiceAdapter(ctrl)

	mockAdapter.EXPECT().ListNotes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.NotesQuery) (json.RawMessage, error) {
			assert.Equal(t, 100, q.Limit)
			return json.RawMessage(`[]`), nil
		})

	out, err := execute(t, mockAdapter, append([]string{"notes"}, identityArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 0 personal notes from the past 7 days")
}

func TestNotes_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockNoteServiceAdapter(ctrl)

	mockAdapter.EXPECT().ListNotes(gomock.Any(), gomock.Any()).
		Return(nil, &adapter.RemoteError{Op: "GET /notes", Status: 401, Err: adapter.ErrUnauthorized})

	_, err := execute(t, mockAdapter, append([]string{"notes"}, identityArgs...)...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrUnauthorized))
}

func TestCheck_PrintsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockNoteServiceAdapter(ctrl)

	mockAdapter.EXPECT().GetNote(gomock.Any(), "n3").Return(models.NoteRecord{
		ID:        "n3",
		Title:     "1:1",
		CreatedBy: "u1",
	}, nil)

	out, err := execute(t, mockAdapter, append([]string{"check", "n3"}, identityArgs...)...)
	require.NoError(t, err)

	var got models.ParticipationReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "n3", got.NoteID)
	assert.True(t, got.IsParticipant)
	assert.Equal(t, "1:1", got.NoteTitle)
	assert.Equal(t, "note_ownership", got.ParticipationDetails.DecidedBy)
}

func TestCheck_RequiresNoteID(t *testing.T) {
	_, err := execute(t, nil, "check")
	require.Error(t, err)
}

func TestNotesArgs(t *testing.T) {
	fs := pflag.NewFlagSet("notes", pflag.ContinueOnError)
	fs.Int("days", 0, "")
	fs.Int("limit", 0, "")
	require.NoError(t, fs.Parse([]string{"--limit", "5"}))

	args, err := notesArgs(fs)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"limit": 5}, args)
}

func TestNotesArgs_FlagReadError(t *testing.T) {
	fs := pflag.NewFlagSet("notes", pflag.ContinueOnError)
	fs.String("days", "", "")
	fs.Int("limit", 0, "")
	require.NoError(t, fs.Parse([]string{"--days", "week"}))

	_, err := notesArgs(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read --days")
}
