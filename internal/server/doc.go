// Package server runs the HTTP listener of the resource service.
//
// It owns the process lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
