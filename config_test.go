package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "plugin-fees")

	cfg := LoadFromEnv()

	assert.Equal(t, "plugin-fees", cfg.ApplicationName)
	assert.Equal(t, []string{"SIGINT", "SIGTERM"}, cfg.TerminationSignals)
	assert.Equal(t, 10, cfg.DrainTimeoutSeconds)
	assert.Zero(t, cfg.ExitCode)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "plugin-fees")
	t.Setenv("SHUTDOWN_SIGNALS", "SIGHUP, SIGUSR1")
	t.Setenv("SHUTDOWN_EXIT_CODE", "9")
	t.Setenv("SHUTDOWN_DRAIN_TIMEOUT_SECONDS", "30")

	cfg := LoadFromEnv()

	assert.Equal(t, []string{"SIGHUP", "SIGUSR1"}, cfg.TerminationSignals)
	assert.Equal(t, 9, cfg.ExitCode)
	assert.Equal(t, 30, cfg.DrainTimeoutSeconds)
}

func TestLoadFromEnv_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "plugin-fees")
	t.Setenv("SHUTDOWN_EXIT_CODE", "not-a-number")
	t.Setenv("SHUTDOWN_DRAIN_TIMEOUT_SECONDS", "soon")

	cfg := LoadFromEnv()

	assert.Zero(t, cfg.ExitCode)
	assert.Equal(t, 10, cfg.DrainTimeoutSeconds)
}
