package server

import "context"

// Server defines the lifecycle contract of the fixture API server.
type Server interface {
	// RunServer serves until ctx is cancelled or SIGINT, SIGTERM or SIGQUIT
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
