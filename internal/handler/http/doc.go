// Package http implements the HTTP transport of the tool server.
//
// It serves the tools as JSON-RPC 2.0 methods on POST /jsonrpc, a liveness
// probe on GET /health and the build version on GET /api/version. Request
// tracing, access logging, compression and panic recovery are handled by
// middleware before requests reach the toolset.
package http
