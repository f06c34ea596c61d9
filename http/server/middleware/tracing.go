package middleware

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/http/server"
	"github.com/rise-and-shine/userbook/meta"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.23.1"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "userbook/http"

// NewTracingMW creates a middleware that opens a server span per request.
//
// The span is renamed to "<METHOD> <route pattern>" once routing is known and is
// tagged with the operation and requested user ids the handler put in the context.
func NewTracingMW() server.Middleware {
	return server.Middleware{
		Priority: 900,
		Handler: func(c *fiber.Ctx) error {
			ctx, span := otel.Tracer(tracerName).Start(
				c.UserContext(),
				c.Method()+" "+c.Path(),
				trace.WithSpanKind(trace.SpanKindServer),
			)
			defer span.End()

			c.SetUserContext(ctx)

			err := c.Next()

			pattern := c.Route().Path
			if pattern != "" && pattern != "/" {
				span.SetName(c.Method() + " " + pattern)
			}

			span.SetAttributes(
				semconv.HTTPMethodKey.String(c.Method()),
				semconv.HTTPRouteKey.String(pattern),
				semconv.HTTPStatusCodeKey.Int(c.Response().StatusCode()),
			)

			// the handler works on the context it was given, read ids from there
			handlerCtx := c.UserContext()
			for _, key := range []meta.ContextKey{meta.OperationID, meta.RequestUserID} {
				if v := meta.Get(handlerCtx, key); v != "" {
					span.SetAttributes(attribute.String(string(key), v))
				}
			}

			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String("error.code", errx.AsErrorX(err).Code()))
				span.SetStatus(codes.Error, err.Error())
			}

			return err
		},
	}
}
