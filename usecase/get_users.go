package usecase

import (
	"context"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/repo"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
)

// OpGetUsers is the operation id of GetUsers.
const OpGetUsers = "get-users"

// GetUsers lists all users.
type GetUsers struct {
	repo repo.UserRepo
}

var _ ucdef.Query[ucdef.NoInput, []domain.User] = (*GetUsers)(nil)

func NewGetUsers(r repo.UserRepo) *GetUsers {
	return &GetUsers{repo: r}
}

func (uc *GetUsers) OperationID() string {
	return OpGetUsers
}

func (uc *GetUsers) Execute(ctx context.Context, _ ucdef.NoInput) result.Result[[]domain.User] {
	return uc.repo.GetUsers(ctx)
}
