package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/granola-notes-mcp/internal/config"
	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/utils"
	"github.com/MKhiriev/granola-notes-mcp/models"
)

type httpNoteServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNoteServiceAdapter constructs the resty implementation of
// [NoteServiceAdapter]. It normalises and validates cfg.BaseURL, configures
// the request timeout and installs the bearer token from cfg.APIKey on the
// underlying client so that every request carries it.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPNoteServiceAdapter(cfg config.Granola, logger *logger.Logger) (NoteServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid granola api url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &httpNoteServiceAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [NoteServiceAdapter]. It performs a single GET and returns
// the body of a 2xx response after checking it is valid JSON.
func (h *httpNoteServiceAdapter) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	op := http.MethodGet + " " + path

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		h.logger.Error().Err(err).Str("op", op).Msg("note service request failed")
		return nil, &RemoteError{Op: op, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	if err = mapHTTPError(op, resp); err != nil {
		h.logger.Error().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("note service responded with an error")
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, &RemoteError{Op: op, Status: resp.StatusCode(), Body: decodeErrorBody(body), Err: ErrMalformedBody}
	}

	return json.RawMessage(body), nil
}

// ListNotes implements [NoteServiceAdapter]. It GETs /notes with limit, since
// and sort query parameters; empty parameters are omitted.
func (h *httpNoteServiceAdapter) ListNotes(ctx context.Context, query models.NotesQuery) (json.RawMessage, error) {
	params := url.Values{}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Since != "" {
		params.Set("since", query.Since)
	}
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}

	return h.Fetch(ctx, "/notes", params)
}

// GetNote implements [NoteServiceAdapter]. It GETs /notes/{id}.
func (h *httpNoteServiceAdapter) GetNote(ctx context.Context, noteID string) (models.NoteRecord, error) {
	var note models.NoteRecord
	path := "/notes/" + url.PathEscape(noteID)

	body, err := h.Fetch(ctx, path, nil)
	if err != nil {
		return note, err
	}
	if err = json.Unmarshal(body, &note); err != nil {
		return note, &RemoteError{Op: http.MethodGet + " " + path, Status: http.StatusOK, Err: fmt.Errorf("%w: %w", ErrMalformedBody, err)}
	}

	return note, nil
}

// GetMeeting implements [NoteServiceAdapter]. It GETs /meetings/{id}.
func (h *httpNoteServiceAdapter) GetMeeting(ctx context.Context, meetingID string) (models.MeetingRecord, error) {
	var meeting models.MeetingRecord
	path := "/meetings/" + url.PathEscape(meetingID)

	body, err := h.Fetch(ctx, path, nil)
	if err != nil {
		return meeting, err
	}
	if err = json.Unmarshal(body, &meeting); err != nil {
		return meeting, &RemoteError{Op: http.MethodGet + " " + path, Status: http.StatusOK, Err: fmt.Errorf("%w: %w", ErrMalformedBody, err)}
	}

	return meeting, nil
}
