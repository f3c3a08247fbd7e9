// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tools exposes the notes service as the two callable tools
// get_personal_notes and check_call_participation.
//
// [Toolset] is transport-agnostic: it decodes loosely typed arguments,
// validates them and returns the result value that transports serialize.
// [NewMCPServer] registers the toolset on an mcp-go server for the stdio
// transport; the HTTP JSON-RPC handler calls [Toolset.Call] directly.
//
// Errors returned by [Toolset.Call] match [ErrMethodNotFound] for unknown
// tool names and [ErrInvalidParams] for bad arguments. Everything else is a
// [*ToolError] wrapping the service failure.
package tools
