package server

import (
	"errors"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/meta"
)

// CodeRouterError is used for errors raised by the router itself, such as unknown routes.
const CodeRouterError = "ROUTER_ERROR"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	TraceID     string    `json:"trace_id"`
	OperationID string    `json:"operation_id,omitempty"`
	Error       ErrorBody `json:"error"`
}

// ErrorBody describes the failure. Trace and Details are omitted when the server
// hides error details.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Trace   string            `json:"trace,omitempty"`
	Details map[string]any    `json:"details,omitempty"`
}

//nolint:gochecknoglobals // read-only lookup tables
var (
	statusByType = map[errx.Type]int{
		errx.T_Authentication: fiber.StatusUnauthorized,
		errx.T_Forbidden:      fiber.StatusForbidden,
		errx.T_NotFound:       fiber.StatusNotFound,
		errx.T_Validation:     fiber.StatusBadRequest,
		errx.T_Conflict:       fiber.StatusConflict,
		errx.T_Throttling:     fiber.StatusTooManyRequests,
	}

	typeByStatus = map[int]errx.Type{
		fiber.StatusUnauthorized:    errx.T_Authentication,
		fiber.StatusForbidden:       errx.T_Forbidden,
		fiber.StatusNotFound:        errx.T_NotFound,
		fiber.StatusConflict:        errx.T_Conflict,
		fiber.StatusTooManyRequests: errx.T_Throttling,
	}
)

// StatusCode returns the HTTP status for an error type. Unknown types map to 500.
func StatusCode(t errx.Type) int {
	if status, ok := statusByType[t]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

// WriteErrorResponse writes err as an ErrorResponse and returns it as an errx error.
func WriteErrorResponse(c *fiber.Ctx, err error, hideDetails bool) error {
	e := toErrorX(err)
	ctx := c.UserContext()

	body := ErrorBody{
		Code:    e.Code(),
		Message: e.Error(),
		Fields:  e.Fields(),
	}
	if !hideDetails {
		body.Trace = e.Trace()
		body.Details = e.Details()
	}

	c.Status(StatusCode(e.Type()))
	_ = c.JSON(ErrorResponse{
		TraceID:     meta.Get(ctx, meta.TraceID),
		OperationID: meta.Get(ctx, meta.OperationID),
		Error:       body,
	})

	return e
}

// customErrorHandler is the router's last resort. Responses already carrying an
// error status were written by the error handler middleware and are left alone.
func customErrorHandler(hideDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			return nil
		}

		_ = WriteErrorResponse(c, err, hideDetails)
		return nil
	}
}

// toErrorX converts router errors (*fiber.Error) into errx errors typed after their status.
func toErrorX(err error) errx.ErrorX {
	var fiberErr *fiber.Error
	if !errors.As(err, &fiberErr) {
		return errx.AsErrorX(err)
	}

	t, ok := typeByStatus[fiberErr.Code]
	if !ok {
		t = errx.T_Internal
		if fiberErr.Code >= fiber.StatusBadRequest && fiberErr.Code < fiber.StatusInternalServerError {
			t = errx.T_Validation
		}
	}

	return errx.AsErrorX(errx.New(
		fiberErr.Message,
		errx.WithCode(CodeRouterError),
		errx.WithType(t),
		errx.WithDetails(errx.D{"fiber_code": fiberErr.Code}),
	))
}
