package middleware

import (
	"time"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/http/server"
	"github.com/rise-and-shine/userbook/logger"
)

// NewLoggerMW creates a middleware that writes one log line per request.
//
// The line carries the request metadata found in the context once the handler has
// run, so ids injected by handlers (operation, requested user) show up too.
// Level follows the status: info below 400, warn for 4xx, error for 5xx.
// Panics pass through untouched; the recovery middleware owns them.
func NewLoggerMW(log logger.Logger) server.Middleware {
	log = log.Named("middleware.logger")

	return server.Middleware{
		Priority: 500,
		Handler: func(c *fiber.Ctx) error {
			start := time.Now()

			err := c.Next()

			status := c.Response().StatusCode()
			reqLog := log.WithContext(c.UserContext()).With(
				"http_method", c.Method(),
				"http_path", c.Path(),
				"http_status_code", status,
				"duration", time.Since(start).String(),
				"response_size", len(c.Response().Body()),
			)
			if q := c.Queries(); len(q) > 0 {
				reqLog = reqLog.With("query_params", q)
			}

			if err != nil {
				e := errx.AsErrorX(err)
				reqLog = reqLog.With("error_code", e.Code(), "error_type", e.Type().String())
			}

			switch {
			case status >= fiber.StatusInternalServerError:
				reqLog.Error("request failed")
			case status >= fiber.StatusBadRequest:
				reqLog.Warn("request rejected")
			default:
				reqLog.Info("request served")
			}

			return err
		},
	}
}
