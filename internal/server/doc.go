// Package server wires and runs the HTTP server of the notes service.
//
// It owns the listener lifecycle: startup, signal handling (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
