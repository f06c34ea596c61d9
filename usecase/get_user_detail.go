package usecase

import (
	"context"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/repo"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
)

// OpGetUserDetail is the operation id of GetUserDetail.
const OpGetUserDetail = "get-user-detail"

// GetUserDetail fetches a single user by id.
type GetUserDetail struct {
	repo repo.UserRepo
}

var _ ucdef.Query[int, domain.User] = (*GetUserDetail)(nil)

func NewGetUserDetail(r repo.UserRepo) *GetUserDetail {
	return &GetUserDetail{repo: r}
}

func (uc *GetUserDetail) OperationID() string {
	return OpGetUserDetail
}

func (uc *GetUserDetail) Execute(ctx context.Context, userID int) result.Result[domain.User] {
	return uc.repo.GetUserByID(ctx, userID)
}
