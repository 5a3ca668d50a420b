package server

// Server is the lifecycle contract of the inbound transport layer.
type Server interface {
	RunServer()
	Shutdown()
}
