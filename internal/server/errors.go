// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransport is returned by NewServer when handlers carry neither an HTTP
// handler nor an MCP server.
var errNoTransport = errors.New("no transport to serve")
