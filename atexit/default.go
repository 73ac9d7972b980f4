package atexit

import (
	"os"
	"path/filepath"
	"sync"

	sdk "github.com/LerianStudio/lib-shutdown-go"
	"github.com/LerianStudio/lib-shutdown-go/model"
	"github.com/LerianStudio/lib-shutdown-go/registry"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide shutdown client, creating it from the
// environment on first use. When APPLICATION_NAME is unset the binary name is
// used so the default client never fails to build.
func Default() *Client {
	defaultOnce.Do(func() {
		cfg := sdk.LoadFromEnv()
		if cfg.ApplicationName == "" {
			cfg.ApplicationName = filepath.Base(os.Args[0])
		}

		client, err := New(cfg, nil)
		if err != nil {
			// Reachable only with a broken SHUTDOWN_* environment; surface it
			// at first use rather than silently dropping handlers.
			panic(err)
		}

		defaultClient = client
	})

	return defaultClient
}

// Register registers a callback on the process-wide client
func Register(callback any, args ...any) (*registry.Handle, error) {
	return Default().Register(callback, args...)
}

// RegisterKeyed registers a deduplicated callback on the process-wide client
func RegisterKeyed(key string, callback any, args ...any) (*registry.Handle, error) {
	return Default().RegisterKeyed(key, callback, args...)
}

// RunAll drains the process-wide client
func RunAll() {
	Default().RunAll()
}

// UnregisterAll removes every live handler from the process-wide client
// without invoking any callback
func UnregisterAll() {
	Default().UnregisterAll()
}

// Handles returns the live handlers of the process-wide client
func Handles() []*registry.Handle {
	return Default().Handles()
}

// Snapshot returns a diagnostics view of the process-wide client
func Snapshot() []model.HandlerInfo {
	return Default().Snapshot()
}

// Exit drains the process-wide client and terminates the process
func Exit(code int) {
	Default().Exit(code)
}
