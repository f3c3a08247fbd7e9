// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "context"

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run serves the configured transport and blocks until ctx is done or
	// the transport stops.
	Run(ctx context.Context) error
	// Close releases resources acquired by the application.
	Close(ctx context.Context) error
}
