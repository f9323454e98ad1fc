// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown that lets in-flight requests finish.
package server
