// Package forward serves use cases over HTTP.
//
// A handler built here decodes the use case input from the request, validates it,
// executes the use case and writes its value as JSON. Failures are returned as errx
// errors for the error handler middleware to write.
package forward

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/mask"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
	"github.com/rise-and-shine/userbook/val"
)

// MetaCarrier is implemented by inputs that want ids of their own in the request
// metadata, e.g. the id of the requested user.
type MetaCarrier interface {
	Meta() map[meta.ContextKey]string
}

// ToQuery returns a GET handler for q. I must be a struct type: path parameters are
// decoded into its `params` tagged fields and query parameters into `query` tagged ones.
func ToQuery[I, O any](q ucdef.Query[I, O], log logger.Logger) fiber.Handler {
	log = log.Named("http.forward")

	return func(c *fiber.Ctx) error {
		var in I

		err := decodePath(c, &in)
		if err != nil {
			return errx.Wrap(err)
		}

		err = decodeQuery(c, &in)
		if err != nil {
			return errx.Wrap(err)
		}

		data := map[meta.ContextKey]string{
			meta.Route:       c.Route().Path,
			meta.OperationID: q.OperationID(),
		}
		if carrier, ok := any(in).(MetaCarrier); ok {
			for k, v := range carrier.Meta() {
				data[k] = v
			}
		}
		ctx := meta.InjectMetaToContext(c.UserContext(), data)
		c.SetUserContext(ctx)

		reqLog := log.WithContext(ctx).With("input", mask.StructToOrdMap(in))

		err = val.ValidateSchema(in)
		if err != nil {
			reqLog.Warnx(err)
			return errx.Wrap(err)
		}

		res := q.Execute(ctx, in)
		if info, failed := res.Failure(); failed {
			return failureError(info)
		}
		out, _ := res.Value()

		size, err := writeJSON(c, out)
		if err != nil {
			reqLog.Errorx(err)
			return errx.Wrap(err)
		}

		reqLog.With("response_size", size).Debug("use case served")
		return nil
	}
}

// failureError returns the error a failed result was built from, keeping its errx type
// so the error handler picks the right status.
func failureError(info result.ErrorInfo) error {
	if info.Cause != nil {
		return errx.Wrap(info.Cause)
	}
	if info.Message != "" {
		return errx.New(info.Message)
	}
	return errx.New("use case failed")
}

func writeJSON(c *fiber.Ctx, data any) (int, error) {
	raw, err := c.App().Config().JSONEncoder(data)
	if err != nil {
		return 0, errx.Wrap(err)
	}

	c.Response().SetBodyRaw(raw)
	c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
	return len(raw), nil
}
