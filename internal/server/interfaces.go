package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests and blocks until ctx is cancelled, a stop
	// signal arrives, or the transport ends by itself (e.g. stdin is closed).
	// A graceful stop returns nil.
	RunServer(ctx context.Context) error
}

// transport is a single listener managed by [Server].
type transport interface {
	// run blocks until the transport stops.
	run(ctx context.Context) error

	// shutdown asks a running transport to stop, waiting at most until ctx
	// expires.
	shutdown(ctx context.Context) error
}
