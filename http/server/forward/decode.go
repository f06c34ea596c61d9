package forward

import (
	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
)

const (
	CodeInvalidPathParams  = "INVALID_PATH_PARAMS"
	CodeInvalidQueryParams = "INVALID_QUERY_PARAMS"
)

// decodePath fills the `params` tagged fields of req from the route parameters.
func decodePath(c *fiber.Ctx, req any) error {
	if len(c.Route().Params) == 0 {
		return nil
	}

	if err := c.ParamsParser(req); err != nil {
		return errx.New(
			"path parameters are malformed",
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeInvalidPathParams),
			errx.WithFields(pathFields(c)),
			errx.WithDetails(errx.D{"reason": err.Error()}),
		)
	}

	return nil
}

// decodeQuery fills the `query` tagged fields of req from the query string.
func decodeQuery(c *fiber.Ctx, req any) error {
	if len(c.Queries()) == 0 {
		return nil
	}

	if err := c.QueryParser(req); err != nil {
		return errx.Wrap(
			err,
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeInvalidQueryParams),
		)
	}

	return nil
}

func pathFields(c *fiber.Ctx) errx.M {
	fields := make(errx.M, len(c.Route().Params))
	for _, name := range c.Route().Params {
		fields[name] = "Invalid value: " + c.Params(name)
	}
	return fields
}
