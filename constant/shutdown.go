package constant

import "time"

// Shutdown behavior defaults
const (
	// DefaultSignals is the comma-separated list of signals that trigger the drain
	DefaultSignals = "SIGINT,SIGTERM"

	// SignalExitCodeBase follows the shell convention of exiting with 128+signo
	SignalExitCodeBase = 128

	// DefaultDrainTimeout bounds server shutdown calls registered through the adapters
	DefaultDrainTimeout = 10 * time.Second
)

// Dedup keys used by the built-in server adapters so that registering the same
// server twice still stops it once
const (
	// FiberServerKey is the dedup key for Fiber app shutdown handlers
	FiberServerKey = "fiber-server"

	// GRPCServerKey is the dedup key for gRPC server stop handlers
	GRPCServerKey = "grpc-server"
)
