package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/http/server"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/tracing"
)

// HeaderTraceID is echoed on every response.
const HeaderTraceID = meta.HeaderTraceID

// NewMetaInjectMW creates a middleware that seeds the request context with metadata.
//
// A trace id sent by the caller (the users client forwards the one of its screen
// activation) is kept, so both sides log the same id. Otherwise the id of the active
// span is used, or a fresh one. Handlers may narrow meta.Route to the matched pattern.
func NewMetaInjectMW(svc meta.Service) server.Middleware {
	return server.Middleware{
		Priority: 700,
		Handler: func(c *fiber.Ctx) error {
			traceID := c.Get(meta.HeaderTraceID)
			if traceID == "" {
				traceID = tracing.GetStartingTraceID(c.UserContext())
			}

			data := svc.Meta()
			data[meta.TraceID] = traceID
			data[meta.Route] = c.Path()

			c.SetUserContext(meta.InjectMetaToContext(c.UserContext(), data))
			c.Set(meta.HeaderTraceID, traceID)

			return c.Next()
		},
	}
}
