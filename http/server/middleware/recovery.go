package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/http/server"
	"github.com/rise-and-shine/userbook/logger"
)

// CodePanicRecovered is returned to the caller when a handler panicked.
const CodePanicRecovered = "HTTP_PANIC_RECOVERED"

// NewRecoveryMW creates the outermost middleware. It turns a panic anywhere below it
// into an internal errx error, which the server's error handler writes as a 500.
func NewRecoveryMW(log logger.Logger) server.Middleware {
	log = log.Named("middleware.recovery")

	return server.Middleware{
		Priority: 1000,
		Handler: func(c *fiber.Ctx) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err = errx.New(
					"panic recovered",
					errx.WithCode(CodePanicRecovered),
					errx.WithType(errx.T_Internal),
					errx.WithDetails(errx.D{
						"panic_message": fmt.Sprint(r),
						"stack_trace":   string(debug.Stack()),
						"http_path":     c.Path(),
					}),
				)
				log.WithContext(c.UserContext()).Errorx(err)
			}()

			return c.Next()
		},
	}
}
