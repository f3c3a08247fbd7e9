// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvKeys = []string{
	"CONFIG",
	"GRANOLA_API_KEY", "GRANOLA_USER_ID", "GRANOLA_USER_EMAIL", "GRANOLA_API_URL", "GRANOLA_REQUEST_TIMEOUT",
	"SERVER_TRANSPORT", "SERVER_ADDRESS", "SERVER_SHUTDOWN_TIMEOUT",
	"NOTES_DEFAULT_DAYS", "NOTES_DEFAULT_LIMIT", "NOTES_OVERFETCH_FACTOR",
	"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS", "LOG_COMPRESS",
	"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
}

// setEnvVars clears every variable the config reads and sets vars.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range allEnvKeys {
		t.Setenv(k, "") // registers restoration of the original value
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"GRANOLA_API_KEY":         "secret",
		"GRANOLA_USER_ID":         "u1",
		"GRANOLA_USER_EMAIL":      "me@example.com",
		"GRANOLA_API_URL":         "https://granola.test",
		"GRANOLA_REQUEST_TIMEOUT": "15s",

		"SERVER_TRANSPORT":        "http",
		"SERVER_ADDRESS":          "127.0.0.1:9000",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"NOTES_DEFAULT_DAYS":     "14",
		"NOTES_DEFAULT_LIMIT":    "20",
		"NOTES_OVERFETCH_FACTOR": "3",

		"LOG_LEVEL":    "info",
		"LOG_FILE":     "/tmp/granola.log",
		"LOG_COMPRESS": "true",

		"OTEL_ENABLED":                "true",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "collector:4318",
		"OTEL_SERVICE_NAME":           "notes",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)

	assert.Equal(t, "secret", cfg.Granola.APIKey)
	assert.Equal(t, "u1", cfg.Granola.UserID)
	assert.Equal(t, "me@example.com", cfg.Granola.UserEmail)
	assert.Equal(t, "https://granola.test", cfg.Granola.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Granola.RequestTimeout)

	assert.Equal(t, TransportHTTP, cfg.Server.Transport)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, 14, cfg.Notes.DefaultDays)
	assert.Equal(t, 20, cfg.Notes.DefaultLimit)
	assert.Equal(t, 3, cfg.Notes.OverfetchFactor)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/tmp/granola.log", cfg.Log.File)
	assert.True(t, cfg.Log.Compress)

	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "notes", cfg.Tracing.ServiceName)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"GRANOLA_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"NOTES_DEFAULT_LIMIT": "fifty"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "30s", want: 30 * time.Second},
		{in: "1m30s", want: 90 * time.Second},
		{in: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
