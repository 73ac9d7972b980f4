package constant

// Environment variable names
const (
	// Is Development environment variable
	EnvIsDevelopment = "IS_DEVELOPMENT"

	// Application name environment variable
	EnvApplicationName = "APPLICATION_NAME"

	// Termination signals environment variable (comma-separated list, e.g. "SIGINT,SIGTERM")
	EnvShutdownSignals = "SHUTDOWN_SIGNALS"

	// Exit code environment variable used after a signal-triggered drain
	EnvShutdownExitCode = "SHUTDOWN_EXIT_CODE"

	// Drain timeout environment variable (seconds)
	EnvShutdownDrainTimeout = "SHUTDOWN_DRAIN_TIMEOUT_SECONDS"
)
