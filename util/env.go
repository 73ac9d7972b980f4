package util

import (
	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/pkg"
)

// ValidateConfig checks the shutdown configuration before the client is built
func ValidateConfig(cfg *model.Config, l log.Logger) error {
	if cfg == nil {
		return constant.ErrMissingAppName
	}

	if commons.IsNilOrEmpty(&cfg.ApplicationName) {
		l.Error("missing application name environment variable")

		return constant.ErrMissingAppName
	}

	for _, name := range cfg.TerminationSignals {
		if _, err := pkg.SignalFromName(name); err != nil {
			l.Errorf("unknown termination signal %q", name)

			return pkg.ValidateBusinessError(err, "Config", name)
		}
	}

	if cfg.ExitCode < 0 || cfg.ExitCode > 255 {
		l.Errorf("exit code %d out of range", cfg.ExitCode)

		return pkg.ValidateBusinessError(constant.ErrInvalidExitCode, "Config")
	}

	if cfg.DrainTimeoutSeconds < 0 {
		l.Errorf("drain timeout %d out of range", cfg.DrainTimeoutSeconds)

		return pkg.ValidateBusinessError(constant.ErrInvalidDrainTimeout, "Config")
	}

	return nil
}
