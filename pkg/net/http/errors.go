package http

import (
	"errors"

	commonsHttp "github.com/LerianStudio/lib-commons/commons/net/http"
	"github.com/LerianStudio/lib-shutdown-go/pkg"
	"github.com/gofiber/fiber/v2"
)

// WithError returns an error response with the status code matching the error type.
func WithError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case pkg.ValidationError:
		return commonsHttp.BadRequest(c, e)
	case pkg.FailedPreconditionError:
		// lib-commons has no 503 helper; keep the same response envelope
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"code":    e.Code,
			"title":   e.Title,
			"message": e.Message,
		})
	default:
		var iErr pkg.InternalServerError
		_ = errors.As(pkg.ValidateInternalError(err, ""), &iErr)

		return commonsHttp.InternalServerError(c, iErr.Code, iErr.Title, iErr.Message)
	}
}
