package screen_test

import (
	"context"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
	"github.com/stretchr/testify/mock"
)

type getUsersMock struct {
	mock.Mock
}

func (m *getUsersMock) OperationID() string { return "get-users" }

func (m *getUsersMock) Execute(ctx context.Context, in ucdef.NoInput) result.Result[[]domain.User] {
	args := m.Called(ctx, in)
	return args.Get(0).(result.Result[[]domain.User]) //nolint:errcheck // test double
}

type getUserDetailMock struct {
	mock.Mock
}

func (m *getUserDetailMock) OperationID() string { return "get-user-detail" }

func (m *getUserDetailMock) Execute(ctx context.Context, id int) result.Result[domain.User] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[domain.User]) //nolint:errcheck // test double
}

// manualLauncher captures tasks so a test can complete them in any order.
type manualLauncher struct {
	tasks []func()
}

func (l *manualLauncher) Launch(task func()) {
	l.tasks = append(l.tasks, task)
}

func sampleUser(id int, name string) domain.User {
	return domain.User{
		ID:      id,
		Name:    name,
		Email:   "user@example.com",
		Phone:   "1-770-736-8031",
		Website: "example.org",
		Company: domain.Company{Name: "Acme", CatchPhrase: "Multi-layered client-server neural-net"},
		Address: domain.Address{Street: "Kulas Light", City: "Gwenborough", Zipcode: "92998-3874"},
	}
}
