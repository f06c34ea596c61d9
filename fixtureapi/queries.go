package fixtureapi

import (
	"context"
	"strconv"
	"time"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
)

// ListUsers serves every fixture user.
type ListUsers struct {
	store *Store
}

func (q *ListUsers) OperationID() string { return "fixture-list-users" }

func (q *ListUsers) Execute(_ context.Context, _ ucdef.NoInput) result.Result[[]dto.UserDTO] {
	return result.Success(q.store.List())
}

// GetUserRequest is decoded from GET /users/:id.
type GetUserRequest struct {
	ID int `params:"id" json:"id"`
}

// Meta puts the requested id in the request metadata.
func (r GetUserRequest) Meta() map[meta.ContextKey]string {
	return map[meta.ContextKey]string{meta.RequestUserID: strconv.Itoa(r.ID)}
}

// GetUser serves a single fixture user.
type GetUser struct {
	store *Store
}

func (q *GetUser) OperationID() string { return "fixture-get-user" }

func (q *GetUser) Execute(_ context.Context, in GetUserRequest) result.Result[dto.UserDTO] {
	return result.From(q.store.Get(in.ID))
}

// withDelay holds every execution back by d. A canceled request context ends the wait
// with a failure.
func withDelay[I, O any](d time.Duration) ucdef.WrapFunc[I, O] {
	return func(next ucdef.Query[I, O]) ucdef.Query[I, O] {
		if d <= 0 {
			return next
		}
		return &delayedQuery[I, O]{next: next, delay: d}
	}
}

type delayedQuery[I, O any] struct {
	next  ucdef.Query[I, O]
	delay time.Duration
}

func (q *delayedQuery[I, O]) OperationID() string { return q.next.OperationID() }

func (q *delayedQuery[I, O]) Execute(ctx context.Context, in I) result.Result[O] {
	t := time.NewTimer(q.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return q.next.Execute(ctx, in)
	case <-ctx.Done():
		return result.FromError[O](errx.New(
			"request ended while the response was delayed",
			errx.WithCode(CodeResponseDelayed),
			errx.WithDetails(errx.D{"delay": q.delay.String(), "reason": ctx.Err().Error()}),
		))
	}
}
