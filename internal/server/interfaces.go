package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is done or SIGTERM, SIGINT or
	// SIGQUIT arrives, then shuts down gracefully. It returns the listener
	// error if serving fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
