// Package atexit is the public client API for the deferred shutdown-handler
// registry. It exists because object finalizers are not guaranteed to run on
// fatal or abnormal termination, while a registered termination hook is.
package atexit

import (
	"sync/atomic"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	sdk "github.com/LerianStudio/lib-shutdown-go"
	"github.com/LerianStudio/lib-shutdown-go/internal/config"
	"github.com/LerianStudio/lib-shutdown-go/internal/hook"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/registry"
)

// Client owns one handler registry and the process-termination hook that
// drains it. Obtain handles through the client; the hook is installed on the
// first successful registration and exactly once per client.
type Client struct {
	registry *registry.Registry
	hook     *hook.Manager
	config   *config.ClientConfig
	logger   log.Logger
	draining atomic.Bool
}

// New creates a new shutdown client from an explicit configuration. A nil
// logger falls back to the default lib-commons zap logger.
func New(cfg model.Config, logger *log.Logger) (*Client, error) {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	resolved, err := config.FromModel(cfg, l)
	if err != nil {
		return nil, err
	}

	return &Client{
		registry: registry.New(l),
		hook:     hook.New(resolved.Signals, resolved.ExitCode, l),
		config:   resolved,
		logger:   l,
	}, nil
}

// NewFromEnv creates a new shutdown client configured from environment variables
func NewFromEnv(logger *log.Logger) (*Client, error) {
	return New(sdk.LoadFromEnv(), logger)
}

// Register validates the callback eagerly and registers it without a dedup
// key. The first successful registration installs the termination hook.
func (c *Client) Register(callback any, args ...any) (*registry.Handle, error) {
	return c.RegisterKeyed("", callback, args...)
}

// RegisterKeyed registers a callback under a dedup key: among all live
// handlers sharing the key, only the last one removed fires its callback.
func (c *Client) RegisterKeyed(key string, callback any, args ...any) (*registry.Handle, error) {
	h, err := c.registry.RegisterKeyed(key, callback, args...)
	if err != nil {
		return nil, err
	}

	c.hook.Install(c.drain)

	return h, nil
}

// RunAll eagerly drains the registry: every live handler runs once, in
// registration order. Integrations treat the process as draining afterwards.
func (c *Client) RunAll() {
	c.drain()
}

// UnregisterAll removes every live handler without invoking any callback
func (c *Client) UnregisterAll() {
	c.registry.UnregisterAll()
}

// Handles returns the currently-registered handlers in registration order
func (c *Client) Handles() []*registry.Handle {
	return c.registry.Handles()
}

// Snapshot returns a read-only diagnostics view of the live handlers
func (c *Client) Snapshot() []model.HandlerInfo {
	return c.registry.Snapshot()
}

// Exit drains the registry and terminates the process with the given code.
// This is the eager counterpart of the signal-triggered hook.
func (c *Client) Exit(code int) {
	c.drain()
	c.hook.Exit(code)
}

// Draining reports whether the drain has started. The server integrations use
// this to reject new work while handlers run.
func (c *Client) Draining() bool {
	return c.draining.Load()
}

// HookInstalled reports whether the termination hook has been installed
func (c *Client) HookInstalled() bool {
	return c.hook.Installed()
}

// Shutdown stops the termination hook listener without running any handler.
// Hosts that tear the client down before process exit call this once.
func (c *Client) Shutdown() {
	c.hook.Shutdown()
}

// DrainTimeout returns the bound applied to server shutdown calls registered
// through the adapters
func (c *Client) DrainTimeout() time.Duration {
	return c.config.DrainTimeout
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// SetExitFunc overrides how Exit and the termination hook terminate the
// process (useful for testing)
func (c *Client) SetExitFunc(fn func(int)) {
	c.hook.SetExitFunc(fn)
}

func (c *Client) drain() {
	c.draining.Store(true)

	count := c.registry.Count()
	c.logger.Infof("Draining %d shutdown handlers for %s", count, c.config.AppName)

	c.registry.RunAll()

	c.logger.Infof("Shutdown drain complete for %s", c.config.AppName)
}
