package sdk

import (
	"os"
	"strconv"

	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/pkg"
)

// LoadFromEnv builds the shutdown configuration from environment variables,
// falling back to the defaults when a variable is unset. Non-numeric values in
// SHUTDOWN_EXIT_CODE or SHUTDOWN_DRAIN_TIMEOUT_SECONDS are ignored and the
// defaults apply.
func LoadFromEnv() model.Config {
	cfg := model.Config{
		ApplicationName:    os.Getenv(constant.EnvApplicationName),
		TerminationSignals: pkg.ParseSignalNames(os.Getenv(constant.EnvShutdownSignals)),
	}

	if len(cfg.TerminationSignals) == 0 {
		cfg.TerminationSignals = pkg.ParseSignalNames(constant.DefaultSignals)
	}

	if raw := os.Getenv(constant.EnvShutdownExitCode); raw != "" {
		if code, err := strconv.Atoi(raw); err == nil {
			cfg.ExitCode = code
		}
	}

	if raw := os.Getenv(constant.EnvShutdownDrainTimeout); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil {
			cfg.DrainTimeoutSeconds = seconds
		}
	}

	if cfg.DrainTimeoutSeconds == 0 {
		cfg.DrainTimeoutSeconds = int(constant.DefaultDrainTimeout.Seconds())
	}

	return cfg
}
