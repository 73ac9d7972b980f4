package atexit

import (
	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/pkg"
	pkgHTTP "github.com/LerianStudio/lib-shutdown-go/pkg/net/http"
	"github.com/LerianStudio/lib-shutdown-go/registry"
	"github.com/gofiber/fiber/v2"
)

// DrainMiddleware creates a Fiber middleware that rejects requests with 503
// once the shutdown drain has started, so in-flight handlers finish while no
// new work is accepted.
func (c *Client) DrainMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if c == nil || !c.Draining() {
			return ctx.Next()
		}

		c.logger.Debugf("Rejecting %s %s: server draining", ctx.Method(), ctx.Path())

		return pkgHTTP.WithError(ctx, pkg.ValidateBusinessError(constant.ErrServerDraining, "Middleware"))
	}
}

// RegisterAppShutdown registers a graceful stop of the Fiber app under the
// fiber dedup key, so registering the same app from several places still
// stops it once.
func (c *Client) RegisterAppShutdown(app *fiber.App) (*registry.Handle, error) {
	return c.RegisterKeyed(constant.FiberServerKey, func() {
		c.logger.Infof("Stopping Fiber server for %s", c.config.AppName)

		if err := app.ShutdownWithTimeout(c.config.DrainTimeout); err != nil {
			c.logger.Errorf("Fiber server shutdown failed: %v", err)
		}
	})
}
