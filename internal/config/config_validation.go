// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	cfg.Granola.APIKey = strings.TrimSpace(cfg.Granola.APIKey)
	cfg.Granola.UserID = strings.TrimSpace(cfg.Granola.UserID)
	cfg.Granola.UserEmail = strings.TrimSpace(cfg.Granola.UserEmail)

	if cfg.Granola.APIKey == "" {
		return ErrMissingAPIKey
	}

	if cfg.Granola.UserID == "" {
		return ErrMissingUserID
	}

	if cfg.Granola.BaseURL == "" || cfg.Granola.RequestTimeout <= 0 {
		return ErrInvalidGranolaConfigs
	}

	switch cfg.Server.Transport {
	case TransportStdio:
	case TransportHTTP:
		if cfg.Server.HTTPAddress == "" {
			return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidServerConfigs, cfg.Server.Transport)
	}

	if cfg.Notes.DefaultDays <= 0 || cfg.Notes.DefaultLimit <= 0 || cfg.Notes.OverfetchFactor <= 0 {
		return ErrInvalidNotesConfigs
	}

	return nil
}
