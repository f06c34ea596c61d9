// Package repo provides the user repository: the boundary below which errors are
// plain Go errors and above which every outcome is a result.Result.
package repo

import (
	"context"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/result"
)

// UserRepo gives read-only access to users.
// Implementations never return a raw error and never panic; every failure is folded
// into a result.Failure carrying the error's message.
type UserRepo interface {
	// GetUsers returns all users in the order the source lists them.
	GetUsers(ctx context.Context) result.Result[[]domain.User]
	// GetUserByID returns the user with the given id.
	GetUserByID(ctx context.Context, id int) result.Result[domain.User]
}

// UserAPI is the transport the remote repository reads from.
type UserAPI interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	GetUserByID(ctx context.Context, id int) (dto.UserDTO, error)
}
