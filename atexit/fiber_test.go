package atexit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainMiddleware_PassesThroughBeforeDrain(t *testing.T) {
	client := newTestClient(t)

	app := fiber.New()
	app.Use(client.DrainMiddleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("success")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDrainMiddleware_RejectsDuringDrain(t *testing.T) {
	client := newTestClient(t)

	app := fiber.New()
	app.Use(client.DrainMiddleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("success")
	})

	client.RunAll()

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRegisterAppShutdown_UsesFiberDedupKey(t *testing.T) {
	client := newTestClient(t)

	app := fiber.New()

	h, err := client.RegisterAppShutdown(app)
	require.NoError(t, err)
	assert.Equal(t, constant.FiberServerKey, h.Key())

	// A second registration joins the same dedup group, so the app is only
	// shut down once at drain time
	h2, err := client.RegisterAppShutdown(app)
	require.NoError(t, err)
	assert.Equal(t, constant.FiberServerKey, h2.Key())

	require.NotPanics(t, client.RunAll)
	assert.False(t, h.IsRegistered())
	assert.False(t, h2.IsRegistered())
}
