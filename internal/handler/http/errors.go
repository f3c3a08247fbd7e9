// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

const jsonRPCVersion = "2.0"

var (
	// ErrInvalidJSONRPCVersion is reported when the "jsonrpc" member is not "2.0".
	ErrInvalidJSONRPCVersion = errors.New(`"jsonrpc" must be "2.0"`)

	// ErrEmptyMethod is reported when the "method" member is missing.
	ErrEmptyMethod = errors.New(`"method" is required`)

	// ErrParamsNotObject is reported when "params" is present but not a JSON object.
	ErrParamsNotObject = errors.New(`"params" must be an object`)
)
