package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseFile decodes a JSON or YAML config file, chosen by extension.
// Durations are written as strings ("30s", "1m") in both formats.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return raw.toStructured()
}

// fileConfig mirrors [StructuredConfig] with durations kept as text, since
// neither encoding/json nor yaml.v3 decode "30s" into time.Duration.
type fileConfig struct {
	Granola struct {
		APIKey         string `json:"api_key" yaml:"api_key"`
		UserID         string `json:"user_id" yaml:"user_id"`
		UserEmail      string `json:"user_email" yaml:"user_email"`
		BaseURL        string `json:"api_url" yaml:"api_url"`
		RequestTimeout string `json:"request_timeout" yaml:"request_timeout"`
	} `json:"granola" yaml:"granola"`

	Server struct {
		Transport       string `json:"transport" yaml:"transport"`
		HTTPAddress     string `json:"http_address" yaml:"http_address"`
		ShutdownTimeout string `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Notes   Notes   `json:"notes" yaml:"notes"`
	Log     Log     `json:"log" yaml:"log"`
	Tracing Tracing `json:"tracing" yaml:"tracing"`
}

func (f fileConfig) toStructured() (*StructuredConfig, error) {
	requestTimeout, err := parseDuration(f.Granola.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("granola.request_timeout: %w", err)
	}
	shutdownTimeout, err := parseDuration(f.Server.ShutdownTimeout)
	if err != nil {
		return nil, fmt.Errorf("server.shutdown_timeout: %w", err)
	}

	return &StructuredConfig{
		Granola: Granola{
			APIKey:         f.Granola.APIKey,
			UserID:         f.Granola.UserID,
			UserEmail:      f.Granola.UserEmail,
			BaseURL:        f.Granola.BaseURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			Transport:       f.Server.Transport,
			HTTPAddress:     f.Server.HTTPAddress,
			ShutdownTimeout: shutdownTimeout,
		},
		Notes:   f.Notes,
		Log:     f.Log,
		Tracing: f.Tracing,
	}, nil
}
