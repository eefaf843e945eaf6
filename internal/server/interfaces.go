package server

// Server is a transport server run by cmd/server.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down
	// gracefully. It blocks for the whole lifetime of the server.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests to finish.
	Shutdown()
}
