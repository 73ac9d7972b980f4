package atexit

import (
	"context"
	"io"

	"github.com/LerianStudio/lib-shutdown-go/registry"
	"github.com/dgraph-io/ristretto/v2"
)

// RegisterCloser registers closer.Close as a shutdown handler
func RegisterCloser(c *Client, closer io.Closer) (*registry.Handle, error) {
	return c.Register(func() {
		if err := closer.Close(); err != nil {
			c.logger.Errorf("Close failed during shutdown drain: %v", err)
		}
	})
}

// RegisterKeyedCloser registers closer.Close under a dedup key
func RegisterKeyedCloser(c *Client, key string, closer io.Closer) (*registry.Handle, error) {
	return c.RegisterKeyed(key, func() {
		if err := closer.Close(); err != nil {
			c.logger.Errorf("Close failed during shutdown drain: %v", err)
		}
	})
}

// RegisterCacheClose registers a ristretto cache to be closed at shutdown,
// flushing its internal buffers before the process ends
func RegisterCacheClose[K ristretto.Key, V any](c *Client, cache *ristretto.Cache[K, V]) (*registry.Handle, error) {
	return c.Register(func() {
		cache.Close()
	})
}

// RegisterCancel registers a context cancellation to fire during the drain,
// stopping background work tied to the process lifecycle
func RegisterCancel(c *Client, cancel context.CancelFunc) (*registry.Handle, error) {
	return c.Register(func() {
		cancel()
	})
}
