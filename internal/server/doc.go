// Package server runs the blog API's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown that lets in-flight requests finish.
package server
