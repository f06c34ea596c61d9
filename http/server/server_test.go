package server

import (
	"net/http/httptest"
	"testing"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMiddlewares_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) fiber.Handler {
		return func(c *fiber.Ctx) error {
			order = append(order, name)
			return c.Next()
		}
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	applyMiddlewares(app, []Middleware{
		{Priority: 400, Handler: mark("errors")},
		{Priority: 1000, Handler: mark("recovery")},
		{Priority: 700, Handler: nil},
		{Priority: 500, Handler: mark("logger-a")},
		{Priority: 500, Handler: mark("logger-b")},
	})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []string{"recovery", "logger-a", "logger-b", "errors"}, order)
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fiber.StatusNotFound, StatusCode(errx.T_NotFound))
	assert.Equal(t, fiber.StatusBadRequest, StatusCode(errx.T_Validation))
	assert.Equal(t, fiber.StatusInternalServerError, StatusCode(errx.T_Internal))
}

func TestToErrorX_RouterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantType errx.Type
	}{
		{name: "not found", err: fiber.ErrNotFound, wantType: errx.T_NotFound},
		{name: "method not allowed", err: fiber.ErrMethodNotAllowed, wantType: errx.T_Validation},
		{name: "service unavailable", err: fiber.ErrServiceUnavailable, wantType: errx.T_Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := toErrorX(tt.err)
			assert.Equal(t, CodeRouterError, e.Code())
			assert.Equal(t, tt.wantType, e.Type())
		})
	}
}
