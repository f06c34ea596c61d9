package transport_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/transport"
	"github.com/rise-and-shine/userbook/val"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp/fasthttputil"
)

const (
	johnJSON = `{"id":1,"name":"John Doe","email":"john@example.com","phone":"555-0100","website":"john.dev",` +
		`"company":{"name":"Acme","catchPhrase":"Build it"},` +
		`"address":{"street":"Main St","suite":"Apt. 1","city":"Springfield","zipcode":"12345"}}`
	janeJSON = `{"id":2,"name":"Jane Smith","email":"jane@example.com","phone":"555-0101","website":"jane.dev",` +
		`"company":{"name":"Globex","catchPhrase":"Ship it"},` +
		`"address":{"street":"Elm St","city":"Shelbyville","zipcode":"54321"}}`
)

// startServer serves app on an in-memory listener and returns a client wired to it.
func startServer(t *testing.T, app *fiber.App) *transport.Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return transport.New(
		transport.Config{BaseURL: "http://users.test/", UserAgent: "userbook-test"},
		transport.WithDial(func(string) (net.Conn, error) { return ln.Dial() }),
		transport.WithLogger(logger.NewNop()),
	)
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

func sendJSON(body string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(body)
	}
}

func TestClient_GetUsers(t *testing.T) {
	t.Parallel()

	var userAgent string
	app := newApp()
	app.Get("/users", func(c *fiber.Ctx) error {
		userAgent = c.Get(fiber.HeaderUserAgent)
		return sendJSON("[" + johnJSON + "," + janeJSON + "]")(c)
	})
	client := startServer(t, app)

	records, err := client.GetUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1, *records[0].ID)
	assert.Equal(t, "John Doe", *records[0].Name)
	assert.Equal(t, "Build it", *records[0].Company.CatchPhrase)
	assert.Equal(t, 2, *records[1].ID)
	assert.Equal(t, "Shelbyville", *records[1].Address.City)
	assert.Equal(t, "userbook-test", userAgent)
}

func TestClient_GetUsers_Empty(t *testing.T) {
	t.Parallel()

	app := newApp()
	app.Get("/users", sendJSON("[]"))
	client := startServer(t, app)

	records, err := client.GetUsers(t.Context())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_GetUserByID(t *testing.T) {
	t.Parallel()

	var gotID string
	app := newApp()
	app.Get("/users/:id", func(c *fiber.Ctx) error {
		gotID = c.Params("id")
		return sendJSON(janeJSON)(c)
	})
	client := startServer(t, app)

	record, err := client.GetUserByID(t.Context(), 2)
	require.NoError(t, err)

	assert.Equal(t, "2", gotID)
	assert.Equal(t, "Jane Smith", record.ToDomain().Name)
	assert.Equal(t, "Globex", record.ToDomain().Company.Name)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  fiber.Handler
		wantCode string
		wantMsg  string
	}{
		{
			name:     "not found",
			handler:  func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) },
			wantCode: transport.CodeUnexpectedStatus,
			wantMsg:  "unexpected status 404",
		},
		{
			name:     "server error",
			handler:  func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) },
			wantCode: transport.CodeUnexpectedStatus,
			wantMsg:  "unexpected status 500",
		},
		{
			name:     "malformed json",
			handler:  sendJSON(`{"id": 1,`),
			wantCode: transport.CodeDecodeFailed,
			wantMsg:  "malformed response",
		},
		{
			name:     "wrong shape",
			handler:  sendJSON(`[1, 2, 3]`),
			wantCode: transport.CodeDecodeFailed,
			wantMsg:  "malformed response",
		},
		{
			name:     "incomplete record",
			handler:  sendJSON(`{"id": 1, "name": "John Doe"}`),
			wantCode: val.CodeValidationFailed,
			wantMsg:  "email: This field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newApp()
			app.Get("/users/:id", tt.handler)
			client := startServer(t, app)

			_, err := client.GetUserByID(t.Context(), 1)
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, tt.wantCode), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_GetUsers_IncompleteRecord(t *testing.T) {
	t.Parallel()

	app := newApp()
	app.Get("/users", sendJSON("["+johnJSON+`,{"id":2}]`))
	client := startServer(t, app)

	records, err := client.GetUsers(t.Context())
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errx.IsCodeIn(err, val.CodeValidationFailed))
}

func TestClient_RequestFailed(t *testing.T) {
	t.Parallel()

	client := transport.New(
		transport.Config{BaseURL: "http://users.test"},
		transport.WithDial(func(string) (net.Conn, error) { return nil, errors.New("connection refused") }),
		transport.WithLogger(logger.NewNop()),
	)

	_, err := client.GetUsers(t.Context())
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, transport.CodeRequestFailed))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	client := transport.New(transport.Config{BaseURL: "http://users.test"}, transport.WithLogger(logger.NewNop()))

	_, err := client.GetUserByID(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}

func TestClient_ForwardsTraceID(t *testing.T) {
	t.Parallel()

	var traceID string
	app := newApp()
	app.Get("/users", func(c *fiber.Ctx) error {
		traceID = c.Get(meta.HeaderTraceID)
		return sendJSON("[]")(c)
	})
	client := startServer(t, app)

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{meta.TraceID: "man-42"})
	_, err := client.GetUsers(ctx)
	require.NoError(t, err)

	assert.Equal(t, "man-42", traceID)
}
