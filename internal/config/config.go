// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// granola-notes-mcp application. It aggregates all sub-configurations and is
// populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - json/yaml: keys used when the config is read from a file.
type StructuredConfig struct {
	// Granola holds the remote note service endpoint and the caller identity.
	Granola Granola `envPrefix:"GRANOLA_" json:"granola" yaml:"granola"`

	// Server selects and configures the transport the tools are exposed on.
	Server Server `envPrefix:"SERVER_" json:"server" yaml:"server"`

	// Notes holds defaults of the personal notes pipeline.
	Notes Notes `envPrefix:"NOTES_" json:"notes" yaml:"notes"`

	// Log configures the application logger.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// Tracing configures the OpenTelemetry exporter.
	Tracing Tracing `envPrefix:"OTEL_" json:"tracing" yaml:"tracing"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	FilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// Granola holds the settings of the remote note service client.
type Granola struct {
	// APIKey is the bearer token sent with every request. Required.
	// Env: GRANOLA_API_KEY
	APIKey string `env:"API_KEY" json:"api_key" yaml:"api_key"`

	// UserID identifies the caller whose notes are filtered. Required.
	// Env: GRANOLA_USER_ID
	UserID string `env:"USER_ID" json:"user_id" yaml:"user_id"`

	// UserEmail is an optional secondary match key.
	// Env: GRANOLA_USER_EMAIL
	UserEmail string `env:"USER_EMAIL" json:"user_email" yaml:"user_email"`

	// BaseURL is the API root, e.g. "https://api.granola.ai".
	// Env: GRANOLA_API_URL
	BaseURL string `env:"API_URL" json:"api_url" yaml:"api_url"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: GRANOLA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout" yaml:"request_timeout"`
}

// Server holds the inbound transport settings.
type Server struct {
	// Transport is either [TransportStdio] or [TransportHTTP].
	// Env: SERVER_TRANSPORT
	Transport string `env:"TRANSPORT" json:"transport" yaml:"transport"`

	// HTTPAddress is the "host:port" the HTTP transport listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address" yaml:"http_address"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Notes holds the defaults applied by the personal notes pipeline when a
// caller omits an argument.
type Notes struct {
	// DefaultDays is the look-back window in days.
	// Env: NOTES_DEFAULT_DAYS
	DefaultDays int `env:"DEFAULT_DAYS" json:"default_days" yaml:"default_days"`

	// DefaultLimit is the maximum number of retained notes.
	// Env: NOTES_DEFAULT_LIMIT
	DefaultLimit int `env:"DEFAULT_LIMIT" json:"default_limit" yaml:"default_limit"`

	// OverfetchFactor multiplies the limit to get the remote page size.
	// Env: NOTES_OVERFETCH_FACTOR
	OverfetchFactor int `env:"OVERFETCH_FACTOR" json:"overfetch_factor" yaml:"overfetch_factor"`
}

// Log configures the zerolog logger.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`

	// File, when set, redirects logs to a rotating file instead of stderr.
	// Env: LOG_FILE
	File string `env:"FILE" json:"file" yaml:"file"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS" json:"max_backups" yaml:"max_backups"`

	// MaxAgeDays is the retention of rotated files.
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS" json:"max_age_days" yaml:"max_age_days"`

	// Compress gzips rotated files.
	// Env: LOG_COMPRESS
	Compress bool `env:"COMPRESS" json:"compress" yaml:"compress"`
}

// Tracing configures the OTLP trace exporter. Tracing is disabled unless
// Enabled is set.
type Tracing struct {
	// Enabled turns tracing on.
	// Env: OTEL_ENABLED
	Enabled bool `env:"ENABLED" json:"enabled" yaml:"enabled"`

	// Endpoint is the OTLP/HTTP collector "host:port".
	// Env: OTEL_EXPORTER_OTLP_ENDPOINT
	Endpoint string `env:"EXPORTER_OTLP_ENDPOINT" json:"endpoint" yaml:"endpoint"`

	// ServiceName is reported as the service.name resource attribute.
	// Env: OTEL_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME" json:"service_name" yaml:"service_name"`
}

// Supported values of [Server.Transport].
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Granola: Granola{
			BaseURL:        "https://api.granola.ai",
			RequestTimeout: 30 * time.Second,
		},
		Server: Server{
			Transport:       TransportStdio,
			HTTPAddress:     "127.0.0.1:11434",
			ShutdownTimeout: 10 * time.Second,
		},
		Notes: Notes{
			DefaultDays:     7,
			DefaultLimit:    50,
			OverfetchFactor: 2,
		},
		Log: Log{
			Level:      "debug",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Tracing: Tracing{
			Endpoint:    "localhost:4318",
			ServiceName: "granola-notes-mcp",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags
//
// flags may be nil when no command line is involved.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
