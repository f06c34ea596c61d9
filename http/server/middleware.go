package server

import (
	"cmp"
	"slices"

	"github.com/gofiber/fiber/v2"
)

// Middleware is a fiber handler with a position in the chain.
// Higher priorities run earlier, i.e. further out.
type Middleware struct {
	Priority int
	Handler  fiber.Handler
}

// applyMiddlewares mounts middlewares from the highest priority down. Equal priorities
// keep their given order and nil handlers are skipped.
func applyMiddlewares(app *fiber.App, middlewares []Middleware) {
	ordered := slices.Clone(middlewares)
	slices.SortStableFunc(ordered, func(a, b Middleware) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	for _, mw := range ordered {
		if mw.Handler != nil {
			app.Use(mw.Handler)
		}
	}
}
