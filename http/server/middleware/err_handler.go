package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/http/server"
)

// NewErrorHandlerMW creates a middleware that writes handler errors as JSON error
// responses while the request metadata is still in the context.
//
// The error is still returned so the logger and tracing middlewares above can record
// it; the server's error handler then sees the error status and leaves the response alone.
func NewErrorHandlerMW(hideDetails bool) server.Middleware {
	return server.Middleware{
		Priority: 400,
		Handler: func(c *fiber.Ctx) error {
			err := c.Next()
			if err == nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
				return err
			}

			return server.WriteErrorResponse(c, err, hideDetails)
		},
	}
}
