// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks tool arguments before they reach the notes
// service.
//
// Every transport decodes arguments into a request model from
// github.com/MKhiriev/granola-notes-mcp/models and passes it to a
// [Validator]. Validation failures are sentinel errors of this package, so
// transports can map them to their "invalid params" response.
package validators

import "context"

// Validator validates a request model. When fields are given only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
