package repo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/mask"
	"github.com/rise-and-shine/userbook/result"
)

const (
	// CodePanicRecovered is used when the transport or the mapper panicked.
	CodePanicRecovered = "PANIC_RECOVERED"

	stackTraceSize = 4096 // 4KB
)

// RemoteUserRepo reads users through a UserAPI and maps the records to domain values.
// It makes exactly one attempt per call: no retry, no cache, no timeout.
type RemoteUserRepo struct {
	api UserAPI
	log logger.Logger
}

var _ UserRepo = (*RemoteUserRepo)(nil)

// NewRemoteUserRepo creates a repository reading from api.
func NewRemoteUserRepo(api UserAPI, log logger.Logger) *RemoteUserRepo {
	return &RemoteUserRepo{
		api: api,
		log: log.Named("repo.user"),
	}
}

func (r *RemoteUserRepo) GetUsers(ctx context.Context) result.Result[[]domain.User] {
	users, err := catchPanic(func() ([]domain.User, error) {
		records, err := r.api.GetUsers(ctx)
		if err != nil {
			return nil, err
		}
		return dto.ToDomainList(records), nil
	})

	log := r.log.WithContext(ctx)
	if err != nil {
		log.Warnx(errx.Wrap(err))
		return result.FromError[[]domain.User](err)
	}

	log.With("count", len(users), "users", mask.Slice(users)).Debug("users loaded")
	return result.Success(users)
}

func (r *RemoteUserRepo) GetUserByID(ctx context.Context, id int) result.Result[domain.User] {
	user, err := catchPanic(func() (domain.User, error) {
		record, err := r.api.GetUserByID(ctx, id)
		if err != nil {
			return domain.User{}, err
		}
		return record.ToDomain(), nil
	})

	log := r.log.WithContext(ctx).With("user_id", id)
	if err != nil {
		log.Warnx(errx.Wrap(err))
		return result.FromError[domain.User](err)
	}

	log.With("user", mask.StructToOrdMap(user)).Debug("user loaded")
	return result.Success(user)
}

// catchPanic runs fn and turns a panic into an error, so that nothing escapes the repository.
func catchPanic[T any](fn func() (T, error)) (_ T, err error) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, stackTraceSize)
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			err = errx.New(
				fmt.Sprintf("unexpected failure: %v", r),
				errx.WithCode(CodePanicRecovered),
				errx.WithDetails(errx.D{
					"stack_trace":  string(stackTrace),
					"panic_values": fmt.Sprintf("%v", r),
				}),
			)
		}
	}()

	return fn()
}
