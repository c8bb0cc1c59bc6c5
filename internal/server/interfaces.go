package server

import "context"

// Server defines the lifecycle contract of the service's listener.
//
// [RunServer] blocks until a stop signal arrives or the listener fails;
// [Shutdown] drains in-flight requests and closes the listener.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
