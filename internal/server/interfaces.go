package server

// Server defines the lifecycle contract of the notes server.
//
// RunServer blocks until a stop signal arrives or serving fails;
// Shutdown stops accepting connections and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
