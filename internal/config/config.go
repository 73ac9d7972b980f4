package config

import (
	"errors"
	"os"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/pkg"
	"github.com/LerianStudio/lib-shutdown-go/util"
)

// ClientConfig holds the resolved configuration for the shutdown client
type ClientConfig struct {
	AppName string

	// Signals that trigger the termination hook
	Signals []os.Signal

	// ExitCode used after a signal-triggered drain; zero derives 128+signo
	ExitCode int

	// DrainTimeout bounds server shutdown calls registered through the adapters
	DrainTimeout time.Duration
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() ClientConfig {
	signals, _ := pkg.ResolveSignals(pkg.ParseSignalNames(constant.DefaultSignals))

	return ClientConfig{
		Signals:      signals,
		DrainTimeout: constant.DefaultDrainTimeout,
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.AppName == "" {
		return errors.New("application name is required")
	}

	if len(c.Signals) == 0 {
		return errors.New("at least one termination signal is required")
	}

	if c.ExitCode < 0 || c.ExitCode > 255 {
		return errors.New("exit code must be between 0 and 255")
	}

	return nil
}

// FromModel converts a model.Config to a ClientConfig
func FromModel(cfg model.Config, logger log.Logger) (*ClientConfig, error) {
	if err := util.ValidateConfig(&cfg, logger); err != nil {
		return nil, err
	}

	config := NewDefaultConfig()
	config.AppName = cfg.ApplicationName
	config.ExitCode = cfg.ExitCode

	if len(cfg.TerminationSignals) > 0 {
		signals, err := pkg.ResolveSignals(cfg.TerminationSignals)
		if err != nil {
			return nil, err
		}

		config.Signals = signals
	}

	if cfg.DrainTimeoutSeconds > 0 {
		config.DrainTimeout = time.Duration(cfg.DrainTimeoutSeconds) * time.Second
	}

	if err := config.Validate(); err != nil {
		logger.Errorf("Invalid configuration: %s", err.Error())

		return nil, err
	}

	return &config, nil
}
