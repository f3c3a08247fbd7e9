// Package server runs the configured transport: the MCP stdio loop or the
// HTTP JSON-RPC server.
//
// It owns the process lifecycle around the transport: startup, stop signals
// (SIGINT, SIGTERM, SIGQUIT) and a bounded graceful shutdown.
package server
