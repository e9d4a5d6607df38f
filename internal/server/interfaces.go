package server

import "context"

// Server defines the lifecycle of the stub HTTP server.
type Server interface {
	// Run serves until ctx is cancelled and returns the first serve error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
