// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API under /api. Cross-cutting concerns such as session cookie
// authentication, request tracing, access logging and response compression
// are handled in this package before requests are delegated to the service
// layer. Every response uses the {success, data, error, message} envelope.
package http
