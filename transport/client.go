// Package transport provides the JSON-over-HTTP client of the users API.
//
// Supported operations:
//   - GET {base}/users       -> list of user records
//   - GET {base}/users/{id}  -> single user record
//
// Every decoded record is validated before it is returned, so callers only ever see
// complete records. Non-2xx statuses, network failures, malformed JSON and incomplete
// records are all returned as errx errors. The client performs exactly one attempt per
// call and sets no timeout.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/code19m/errx"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/val"
	"github.com/valyala/fasthttp"
)

const usersPath = "/users"

// Client talks to the users API.
type Client struct {
	baseURL string
	http    *fiber.Client
	dial    fasthttp.DialFunc
	log     logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDial replaces the network dialer. Tests use it to reach an in-memory listener.
func WithDial(dial fasthttp.DialFunc) Option {
	return func(c *Client) {
		c.dial = dial
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a Client for the API rooted at cfg.BaseURL.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &fiber.Client{UserAgent: cfg.UserAgent},
		log:     logger.Global(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("transport.http")
	return c
}

// GetUsers fetches every user record.
func (c *Client) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	var records []dto.UserDTO
	err := c.getJSON(ctx, usersPath, &records)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	for i := range records {
		err = val.ValidateSchema(records[i])
		if err != nil {
			return nil, errx.Wrap(err, errx.WithDetails(errx.D{"index": i}))
		}
	}

	return records, nil
}

// GetUserByID fetches the record of a single user.
func (c *Client) GetUserByID(ctx context.Context, id int) (dto.UserDTO, error) {
	var record dto.UserDTO
	err := c.getJSON(ctx, usersPath+"/"+strconv.Itoa(id), &record)
	if err != nil {
		return dto.UserDTO{}, errx.Wrap(err)
	}

	err = val.ValidateSchema(record)
	if err != nil {
		return dto.UserDTO{}, errx.Wrap(err, errx.WithDetails(errx.D{"user_id": id}))
	}

	return record, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	err := ctx.Err()
	if err != nil {
		return errx.Wrap(err)
	}

	url := c.baseURL + path
	log := c.log.WithContext(ctx).With("http_method", fiber.MethodGet, "url", url)

	agent := c.http.Get(url)
	if c.dial != nil && agent.HostClient != nil {
		agent.HostClient.Dial = c.dial
	}
	if traceID := meta.Get(ctx, meta.TraceID); traceID != "" {
		agent.Set(meta.HeaderTraceID, traceID)
	}

	start := time.Now()
	status, body, errs := agent.Bytes()
	log = log.With("duration", time.Since(start))

	if len(errs) > 0 {
		err = errx.New(
			errors.Join(errs...).Error(),
			errx.WithCode(CodeRequestFailed),
			errx.WithDetails(errx.D{"url": url}),
		)
		log.Warnx(err)
		return err
	}

	log = log.With("http_status_code", status, "response_size", len(body))

	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		err = errx.New(
			fmt.Sprintf("GET %s: unexpected status %d", path, status),
			errx.WithCode(CodeUnexpectedStatus),
			errx.WithDetails(errx.D{"url": url, "http_status_code": status}),
		)
		log.Warnx(err)
		return err
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		err = errx.New(
			fmt.Sprintf("GET %s: malformed response: %v", path, err),
			errx.WithCode(CodeDecodeFailed),
			errx.WithDetails(errx.D{"url": url}),
		)
		log.Warnx(err)
		return err
	}

	log.Debug("response received")
	return nil
}
