package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingAPIKey indicates that no Granola API key was configured.
	ErrMissingAPIKey = errors.New("GRANOLA_API_KEY is required")
	// ErrMissingUserID indicates that no Granola user id was configured.
	ErrMissingUserID = errors.New("GRANOLA_USER_ID is required")
	// ErrInvalidGranolaConfigs indicates invalid client settings
	// (for example, an empty base URL or a zero request timeout).
	ErrInvalidGranolaConfigs = errors.New("invalid granola configuration")
	// ErrInvalidServerConfigs indicates an unknown transport or a missing
	// HTTP address for the HTTP transport.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidNotesConfigs indicates non-positive pipeline defaults.
	ErrInvalidNotesConfigs = errors.New("invalid notes configuration")
	// ErrUnsupportedConfigFile is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
